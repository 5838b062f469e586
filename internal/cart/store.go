package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/harber-marketplace/harber-client/internal/api"
	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"
)

// RemoteCart 远端购物车接口（*api.Client 实现）
type RemoteCart interface {
	FetchCart(ctx context.Context) ([]api.CartEntry, error)
	AddToCart(ctx context.Context, productID uint, quantity int) error
	IncreaseQuantity(ctx context.Context, entryID uint) error
	DecreaseQuantity(ctx context.Context, entryID uint) error
	RemoveFromCart(ctx context.Context, entryID uint) error
	ClearCart(ctx context.Context) error
}

// State 购物车对外状态快照
type State struct {
	Items             []Item
	IsLoading         bool
	ShowConfirmDialog bool
	PendingItem       *Candidate
}

// Subscriber 状态变更回调（每次变更收到完整快照）
type Subscriber func(State)

// Options Store 构造参数
type Options struct {
	Client    RemoteCart
	Snapshots repository.SnapshotRepository
	Profile   string
	Notifier  Notifier
	Logger    *zap.SugaredLogger
}

// Store 本地购物车状态容器。所有写操作先乐观更新本地，
// 再调用远端；远端失败只通知用户并整体回拉，不向调用方抛错。
type Store struct {
	mu        sync.Mutex
	items     []Item
	isLoading bool
	showDlg   bool
	pending   *Candidate

	client    RemoteCart
	snapshots repository.SnapshotRepository
	profile   string
	notifier  Notifier
	log       *zap.SugaredLogger

	subscribers map[int]Subscriber
	nextSubID   int
}

// NewStore 构造购物车并从本地快照恢复条目。
// 瞬态标记（isLoading / 确认弹窗 / 待确认商品）不持久化，重启后始终复位。
func NewStore(opts Options) (*Store, error) {
	if opts.Client == nil {
		return nil, errors.New("cart: remote client is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Notifier == nil {
		opts.Notifier = NewLogNotifier(opts.Logger)
	}
	if opts.Profile == "" {
		opts.Profile = "default"
	}
	s := &Store{
		client:      opts.Client,
		snapshots:   opts.Snapshots,
		profile:     opts.Profile,
		notifier:    opts.Notifier,
		log:         opts.Logger,
		subscribers: make(map[int]Subscriber),
	}
	if err := s.restore(); err != nil {
		return nil, err
	}
	return s, nil
}

// restore 从快照仓库加载上次保存的购物车条目
func (s *Store) restore() error {
	if s.snapshots == nil {
		return nil
	}
	snapshot, err := s.snapshots.Load(s.profile)
	if err != nil {
		return err
	}
	if snapshot == nil || snapshot.Payload == "" {
		return nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(snapshot.Payload), &items); err != nil {
		// 快照损坏按空购物车处理，下次写入覆盖
		s.log.Warnw("cart_snapshot_corrupt", "profile", s.profile, "err", err)
		return nil
	}
	s.items = items
	return nil
}

// Subscribe 注册状态订阅，返回取消函数
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot 返回当前状态的拷贝
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Items 返回当前条目拷贝
func (s *Store) Items() []Item {
	return s.Snapshot().Items
}

// IsLoading 是否有进行中的购物车操作
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// ShowConfirmDialog 是否应展示换卖家确认弹窗
func (s *Store) ShowConfirmDialog() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showDlg
}

// PendingItem 待确认商品（无冲突时为 nil）
func (s *Store) PendingItem() *Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	pending := *s.pending
	return &pending
}

// SetShowConfirmDialog 由确认控制器驱动的弹窗开关
func (s *Store) SetShowConfirmDialog(show bool) {
	s.mu.Lock()
	s.showDlg = show
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
}

// SetPendingItem 设置或清除待确认商品
func (s *Store) SetPendingItem(candidate *Candidate) {
	s.mu.Lock()
	if candidate == nil {
		s.pending = nil
	} else {
		pending := *candidate
		s.pending = &pending
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
}

// CurrentSellerID 当前购物车锁定的卖家（空购物车返回 ok=false）
func (s *Store) CurrentSellerID() (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return currentSellerID(s.items)
}

// Total 购物车金额合计
func (s *Store) Total() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := models.Money{}
	for _, item := range s.items {
		total = total.Add(item.Price.MulInt(int64(item.Quantity)))
	}
	return total
}

// SyncWithServer 以服务端为准整体替换本地条目。
// 不触碰 isLoading 与确认弹窗状态，可在任意操作中安全调用。
func (s *Store) SyncWithServer(ctx context.Context) {
	entries, err := s.client.FetchCart(ctx)
	if err != nil {
		s.log.Warnw("cart_sync_failed", "err", err)
		s.notifier.Notify("Gagal memuat keranjang")
		return
	}
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, itemFromEntry(entry))
	}
	s.mu.Lock()
	s.items = items
	s.persistLocked()
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
}

// AddItem 加入购物车。卖家冲突时挂起为待确认并弹窗，不发远端请求；
// 已有同商品时转为数量 +1；否则乐观追加并请求远端。
func (s *Store) AddItem(ctx context.Context, candidate Candidate) {
	s.mu.Lock()
	if conflictsWith(s.items, candidate) {
		s.suspendLocked(candidate)
		snap := s.snapshotLocked()
		subs := s.subscribersLocked()
		s.mu.Unlock()
		publish(subs, snap)
		return
	}
	if idx := findByProduct(s.items, candidate.ProductID); idx >= 0 {
		id := s.items[idx].ID
		quantity := s.items[idx].Quantity + 1
		s.mu.Unlock()
		s.UpdateQuantity(ctx, id, quantity)
		return
	}
	s.beginLoadingLocked()
	s.items = append(s.items, itemFromCandidate(candidate))
	s.persistLocked()
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
	defer s.endLoading()

	if err := s.client.AddToCart(ctx, candidate.ProductID, 1); err != nil {
		s.recoverRemoteFailure(ctx, "add_to_cart", err)
	}
}

// UpdateQuantity 将指定条目的数量设为 quantity。
// quantity<=0 等价删除；id 不存在则静默忽略；
// 远端只按方向推进一步，与本地差值大小无关。
func (s *Store) UpdateQuantity(ctx context.Context, id uint, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}
	s.mu.Lock()
	idx := findByID(s.items, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	diff := quantity - s.items[idx].Quantity
	s.beginLoadingLocked()
	s.items[idx].Quantity = quantity
	s.persistLocked()
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
	defer s.endLoading()

	var err error
	switch {
	case diff > 0:
		err = s.client.IncreaseQuantity(ctx, id)
	case diff < 0:
		err = s.client.DecreaseQuantity(ctx, id)
	}
	if err != nil {
		s.recoverRemoteFailure(ctx, "update_quantity", err)
	}
}

// RemoveItem 删除条目。本地不存在时不发远端请求。
func (s *Store) RemoveItem(ctx context.Context, id uint) {
	s.mu.Lock()
	idx := findByID(s.items, id)
	s.beginLoadingLocked()
	if idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		s.persistLocked()
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
	defer s.endLoading()

	if idx < 0 {
		return
	}
	if err := s.client.RemoveFromCart(ctx, id); err != nil {
		s.recoverRemoteFailure(ctx, "remove_from_cart", err)
	}
}

// ClearCart 清空购物车
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.beginLoadingLocked()
	s.items = nil
	s.persistLocked()
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
	defer s.endLoading()

	if err := s.client.ClearCart(ctx); err != nil {
		s.recoverRemoteFailure(ctx, "clear_cart", err)
	}
}

// recoverRemoteFailure 远端失败的统一补偿：通知用户并整体回拉
func (s *Store) recoverRemoteFailure(ctx context.Context, op string, err error) {
	s.log.Warnw("cart_remote_failed", "op", op, "err", err)
	if api.IsDifferentSeller(err) {
		s.notifier.Notify("Keranjang berisi produk dari toko lain")
	} else {
		s.notifier.Notify("Operasi keranjang gagal, memuat ulang dari server")
	}
	s.SyncWithServer(ctx)
}

func (s *Store) beginLoadingLocked() {
	s.isLoading = true
}

// endLoading 释放加载标记。所有写操作通过 defer 调用，保证任何路径都会复位。
func (s *Store) endLoading() {
	s.mu.Lock()
	s.isLoading = false
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	publish(subs, snap)
}

// persistLocked 将当前条目写入本地快照（仅条目，不含瞬态标记）
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}
	payload, err := json.Marshal(s.items)
	if err != nil {
		s.log.Warnw("cart_snapshot_marshal_failed", "err", err)
		return
	}
	if err := s.snapshots.Save(s.profile, string(payload)); err != nil {
		s.log.Warnw("cart_snapshot_save_failed", "profile", s.profile, "err", err)
	}
}

func (s *Store) snapshotLocked() State {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	state := State{
		Items:             items,
		IsLoading:         s.isLoading,
		ShowConfirmDialog: s.showDlg,
	}
	if s.pending != nil {
		pending := *s.pending
		state.PendingItem = &pending
	}
	return state
}

func (s *Store) subscribersLocked() []Subscriber {
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

// publish 在锁外回调订阅者，避免订阅者反向调用 Store 造成死锁
func publish(subs []Subscriber, snap State) {
	for _, fn := range subs {
		fn(snap)
	}
}

func findByID(items []Item, id uint) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func findByProduct(items []Item, productID uint) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
