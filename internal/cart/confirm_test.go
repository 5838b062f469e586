package cart

import (
	"context"
	"testing"

	"github.com/harber-marketplace/harber-client/internal/api"
)

func newConflictedStore(t *testing.T) (*Store, *fakeRemote, *ConfirmController) {
	t.Helper()
	remote := &fakeRemote{entries: []api.CartEntry{serverEntry(11, 1, 7, 1)}}
	store, _ := newTestStore(t, remote)
	store.SyncWithServer(context.Background())
	remote.calls = nil

	store.AddItem(context.Background(), testCandidate(t, 2, 8))
	if !store.ShowConfirmDialog() {
		t.Fatal("precondition: conflict should suspend the add")
	}
	return store, remote, NewConfirmController(store)
}

func TestConfirmReplacesCart(t *testing.T) {
	store, remote, controller := newConflictedStore(t)

	// 确认后服务端也换到了新卖家的购物车
	remote.entries = nil
	controller.Confirm(context.Background())

	items := store.Items()
	if len(items) != 1 || items[0].ProductID != 2 {
		t.Fatalf("cart should hold only the pending item, got %+v", items)
	}
	if items[0].Seller.ID != 8 {
		t.Fatalf("expected new seller 8, got %d", items[0].Seller.ID)
	}
	if store.ShowConfirmDialog() {
		t.Fatal("dialog must be dismissed after confirm")
	}
	if store.PendingItem() != nil {
		t.Fatal("pending item must be cleared after confirm")
	}

	expected := []string{"clear", "add:2:1"}
	if len(remote.calls) != len(expected) {
		t.Fatalf("unexpected remote calls: %v", remote.calls)
	}
	for i, call := range expected {
		if remote.calls[i] != call {
			t.Fatalf("call %d: expected %s, got %s", i, call, remote.calls[i])
		}
	}
}

func TestCancelKeepsCart(t *testing.T) {
	store, remote, controller := newConflictedStore(t)

	controller.Cancel()

	items := store.Items()
	if len(items) != 1 || items[0].ProductID != 1 {
		t.Fatalf("cancel must keep the original cart, got %+v", items)
	}
	if store.ShowConfirmDialog() {
		t.Fatal("dialog must be dismissed after cancel")
	}
	if store.PendingItem() != nil {
		t.Fatal("pending item must be cleared after cancel")
	}
	if len(remote.calls) != 0 {
		t.Fatalf("cancel must not reach the server, got %v", remote.calls)
	}
}

func TestConfirmWithoutPendingResetsDialog(t *testing.T) {
	remote := &fakeRemote{}
	store, _ := newTestStore(t, remote)
	controller := NewConfirmController(store)
	store.SetShowConfirmDialog(true)

	controller.Confirm(context.Background())

	if store.ShowConfirmDialog() {
		t.Fatal("dialog must be dismissed")
	}
	if len(remote.calls) != 0 {
		t.Fatalf("no pending item means no remote calls, got %v", remote.calls)
	}
}
