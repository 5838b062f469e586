package cart

import "context"

// ConfirmController 换卖家确认弹窗的控制器。
// 确认 = 清空旧卖家购物车后重新加入待确认商品；取消 = 仅复位弹窗状态。
type ConfirmController struct {
	store *Store
}

// NewConfirmController 构造确认控制器
func NewConfirmController(store *Store) *ConfirmController {
	return &ConfirmController{store: store}
}

// Visible 弹窗是否应展示
func (c *ConfirmController) Visible() bool {
	return c.store.ShowConfirmDialog()
}

// Pending 待确认商品
func (c *ConfirmController) Pending() *Candidate {
	return c.store.PendingItem()
}

// Confirm 用户确认换卖家：清空购物车并加入待确认商品，随后复位弹窗。
// 弹窗状态始终复位，即使清空或加入的远端请求失败。
func (c *ConfirmController) Confirm(ctx context.Context) {
	pending := c.store.PendingItem()
	defer c.reset()
	if pending == nil {
		return
	}
	c.store.ClearCart(ctx)
	c.store.AddItem(ctx, *pending)
}

// Cancel 用户放弃换卖家，购物车保持原样
func (c *ConfirmController) Cancel() {
	c.reset()
}

func (c *ConfirmController) reset() {
	c.store.SetShowConfirmDialog(false)
	c.store.SetPendingItem(nil)
}
