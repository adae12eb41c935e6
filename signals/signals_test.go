package signals

import "testing"

func TestSignal_SetNotifiesSubscribers(t *testing.T) {
	// Arrange
	s := NewSignal("/")
	var seen []string
	s.Subscribe(func() { seen = append(seen, "a:"+s.Get()) })
	s.Subscribe(func() { seen = append(seen, "b:"+s.Get()) })

	// Act
	s.Set("/settings")

	// Assert
	if len(seen) != 2 || seen[0] != "a:/settings" || seen[1] != "b:/settings" {
		t.Errorf("Expected both subscribers in order, got %v", seen)
	}
}

func TestSignal_SetSameValueDoesNotNotify(t *testing.T) {
	s := NewSignal(3)
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Set(3)

	if calls != 0 {
		t.Errorf("Expected no notification for unchanged value, got %d", calls)
	}
}

func TestSignal_UnsubscribeMiddle(t *testing.T) {
	// Arrange: three subscribers, remove the middle one
	s := NewSignal(0)
	var seen []string
	s.Subscribe(func() { seen = append(seen, "first") })
	unsub := s.Subscribe(func() { seen = append(seen, "second") })
	s.Subscribe(func() { seen = append(seen, "third") })

	// Act
	unsub()
	unsub() // second call is harmless
	s.Set(1)

	// Assert
	if len(seen) != 2 || seen[0] != "first" || seen[1] != "third" {
		t.Errorf("Expected [first third], got %v", seen)
	}
}
