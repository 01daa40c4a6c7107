package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchOnlyToSubscribers(t *testing.T) {
	d := NewDispatcher()
	hits := &recorder{}
	tiers := &recorder{}
	d.Subscribe(CityHit, hits)
	d.Subscribe(TierUp, tiers)

	d.Dispatch(Event{Type: CityHit, Data: CityHitData{Damage: 5}})
	d.Dispatch(Event{Type: EnemyDefeated})

	if len(hits.got) != 1 {
		t.Fatalf("CityHit listener got %d events, want 1", len(hits.got))
	}
	if data := hits.got[0].Data.(CityHitData); data.Damage != 5 {
		t.Errorf("damage = %d, want 5", data.Damage)
	}
	if len(tiers.got) != 0 {
		t.Errorf("TierUp listener got %d events, want 0", len(tiers.got))
	}
}

func TestDispatchPreservesSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		d.Subscribe(EnemyDefeated, ListenerFunc(func(Event) { order = append(order, i) }))
	}
	d.Dispatch(Event{Type: EnemyDefeated})

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PhaseChanged, r)
	d.Unsubscribe(PhaseChanged, r)
	d.Dispatch(Event{Type: PhaseChanged})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(r.got))
	}
}
