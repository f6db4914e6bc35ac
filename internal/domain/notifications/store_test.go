package notifications

import (
	"strings"
	"testing"
)

func TestNewStoreSeedsWelcomeEntry(t *testing.T) {
	store := NewStore()

	items := store.List()
	if len(items) != 1 {
		t.Fatalf("expected 1 seeded notification, got %d", len(items))
	}
	if !strings.Contains(items[0].Message, "Welcome") {
		t.Fatalf("unexpected seed message: %q", items[0].Message)
	}
	if !items[0].Read {
		t.Fatal("the welcome entry must start read")
	}
	if store.UnreadCount() != 0 {
		t.Fatalf("expected 0 unread, got %d", store.UnreadCount())
	}
}

func TestAddPrependsUnread(t *testing.T) {
	store := NewStore()
	store.Add("first")
	store.Add("second")

	items := store.List()
	if len(items) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(items))
	}
	if items[0].Message != "second" || items[1].Message != "first" {
		t.Fatalf("feed must be newest first: %v", items)
	}
	if items[0].Read || items[1].Read {
		t.Fatal("added notifications must start unread")
	}
	if store.UnreadCount() != 2 {
		t.Fatalf("expected 2 unread, got %d", store.UnreadCount())
	}
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Add("pending approval")

	store.MarkAllRead()
	if store.UnreadCount() != 0 {
		t.Fatalf("expected 0 unread after first call, got %d", store.UnreadCount())
	}
	before := len(store.List())

	store.MarkAllRead()
	if store.UnreadCount() != 0 {
		t.Fatal("second call must stay at 0 unread")
	}
	if len(store.List()) != before {
		t.Fatal("MarkAllRead must not remove entries")
	}
}
