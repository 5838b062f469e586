package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/harber-marketplace/harber-client/internal/api"
	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"
)

func newSQLiteSnapshots(t *testing.T) repository.SnapshotRepository {
	t.Helper()
	db, err := models.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	repo, err := repository.NewSnapshotRepository(db)
	if err != nil {
		t.Fatalf("create snapshot repository failed: %v", err)
	}
	return repo
}

func TestItemsSurviveRestart(t *testing.T) {
	snapshots := newSQLiteSnapshots(t)
	remote := &fakeRemote{entries: []api.CartEntry{serverEntry(11, 1, 7, 2)}}

	store, err := NewStore(Options{Client: remote, Snapshots: snapshots, Notifier: &fakeNotifier{}})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	store.SyncWithServer(context.Background())

	// 同一快照仓库重新构造，模拟进程重启
	restarted, err := NewStore(Options{Client: remote, Snapshots: snapshots, Notifier: &fakeNotifier{}})
	if err != nil {
		t.Fatalf("NewStore after restart failed: %v", err)
	}
	items := restarted.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 restored item, got %d", len(items))
	}
	if items[0].ID != 11 || items[0].Quantity != 2 {
		t.Fatalf("restored item mismatch: %+v", items[0])
	}
	if items[0].Price.String() != "15000.00" {
		t.Fatalf("restored price mismatch: %s", items[0].Price.String())
	}
}

func TestTransientFlagsNotPersisted(t *testing.T) {
	snapshots := newSQLiteSnapshots(t)
	remote := &fakeRemote{entries: []api.CartEntry{serverEntry(11, 1, 7, 1)}}

	store, err := NewStore(Options{Client: remote, Snapshots: snapshots, Notifier: &fakeNotifier{}})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	store.SyncWithServer(context.Background())
	store.AddItem(context.Background(), testCandidate(t, 2, 8))
	if !store.ShowConfirmDialog() {
		t.Fatal("precondition: conflict should suspend the add")
	}

	restarted, err := NewStore(Options{Client: remote, Snapshots: snapshots, Notifier: &fakeNotifier{}})
	if err != nil {
		t.Fatalf("NewStore after restart failed: %v", err)
	}
	if restarted.ShowConfirmDialog() {
		t.Fatal("confirm dialog must reset on restart")
	}
	if restarted.PendingItem() != nil {
		t.Fatal("pending item must reset on restart")
	}
	if restarted.IsLoading() {
		t.Fatal("isLoading must reset on restart")
	}
	if len(restarted.Items()) != 1 {
		t.Fatalf("items must survive restart, got %+v", restarted.Items())
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	snapshots := newSQLiteSnapshots(t)
	if err := snapshots.Save("default", "{not json"); err != nil {
		t.Fatalf("seed corrupt snapshot failed: %v", err)
	}

	store, err := NewStore(Options{Client: &fakeRemote{}, Snapshots: snapshots, Notifier: &fakeNotifier{}})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("corrupt snapshot must yield empty cart, got %+v", store.Items())
	}
}
