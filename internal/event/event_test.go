package event

import (
	"reflect"
	"testing"
)

func TestSubscribersRunInOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.SubscribeFunc(TakeDamage, 20, func(Event) { got = append(got, "clear") })
	d.SubscribeFunc(TakeDamage, 10, func(Event) { got = append(got, "gear") })
	d.SubscribeFunc(TakeDamage, 20, func(Event) { got = append(got, "flash") })

	d.Push(Event{Type: TakeDamage})
	if n := d.Drain(); n != 1 {
		t.Fatalf("Drain delivered %d, want 1", n)
	}
	want := []string{"gear", "clear", "flash"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestDrainProcessesEventsRaisedByHandlers(t *testing.T) {
	d := NewDispatcher()
	scored := 0
	d.SubscribeFunc(DespawnEnemy, 10, func(e Event) {
		if e.Data.(DespawnEnemyData).Killed {
			d.Push(Event{Type: ScoreChanged})
		}
	})
	d.SubscribeFunc(ScoreChanged, 10, func(Event) { scored++ })

	d.Push(Event{Type: DespawnEnemy, Data: DespawnEnemyData{Enemy: 3, Killed: true}})
	d.Drain()
	if scored != 1 || d.Pending() != 0 {
		t.Fatalf("scored=%d pending=%d", scored, d.Pending())
	}
}

func TestDrainIsBounded(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.SubscribeFunc(SpawnBall, 10, func(e Event) {
		calls++
		d.Push(e)
	})
	d.Push(Event{Type: SpawnBall})
	d.Drain()
	if calls != MaxDrainPasses {
		t.Fatalf("calls = %d, want %d", calls, MaxDrainPasses)
	}
	if d.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", d.Pending())
	}
}

type countingListener struct{ n int }

func (c *countingListener) OnEvent(Event) { c.n++ }

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(GameOver, 10, l)
	d.Dispatch(Event{Type: GameOver})
	d.Unsubscribe(GameOver, l)
	d.Dispatch(Event{Type: GameOver})
	if l.n != 1 {
		t.Fatalf("n = %d, want 1", l.n)
	}
}
