package mind

import (
	"github.com/mindforge/mindforge/internal/model"
)

// AddStream creates a revenue stream with zero sales. Negative prices are
// clamped to zero. Duplicate names may coexist; RecordSale hits the first
// match, so the earliest stream under a name is the live one.
func (m *Mind) AddStream(name string, price float64, description string) (model.RevenueStream, error) {
	if price < 0 {
		price = 0
	}
	stream := model.RevenueStream{
		Name:        name,
		Price:       price,
		Description: description,
		Active:      true,
	}
	err := m.mutate(func(st *model.AgentState) {
		st.Resources.Streams = append(st.Resources.Streams, stream)
	})
	return stream, err
}

// RecordSale tallies one sale on the first stream matching name: sales up
// by one, stream revenue and total earnings up by the unit price. Returns
// false without touching anything when no stream matches.
func (m *Mind) RecordSale(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.state.Resources.Streams {
		s := &m.state.Resources.Streams[i]
		if s.Name != name {
			continue
		}
		s.Sales++
		s.Revenue += s.Price
		m.state.Resources.TotalEarned += s.Price
		m.state.Status.LastUpdate = m.now()
		return true, m.store.Save(m.state)
	}
	return false, nil
}

// SetExpenses replaces the recorded expense total.
func (m *Mind) SetExpenses(v float64) error {
	return m.mutate(func(st *model.AgentState) {
		st.Resources.Expenses = v
	})
}

// Profit is total earnings minus expenses, computed on every call.
func (m *Mind) Profit() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Resources.TotalEarned - m.state.Resources.Expenses
}

// DailyTarget returns how much must be earned per remaining day to reach
// target. With no days left it returns target unchanged rather than divide
// by zero. The result may be negative when the target is already exceeded.
func (m *Mind) DailyTarget(target float64, daysLeft int) float64 {
	if daysLeft <= 0 {
		return target
	}
	return (target - m.Profit()) / float64(daysLeft)
}

// Streams returns a copy of the revenue streams.
func (m *Mind) Streams() []model.RevenueStream {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RevenueStream, len(m.state.Resources.Streams))
	copy(out, m.state.Resources.Streams)
	return out
}

// Earnings returns the total earned and expense figures.
func (m *Mind) Earnings() (earned, expenses float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Resources.TotalEarned, m.state.Resources.Expenses
}
