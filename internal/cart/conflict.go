package cart

// currentSellerID 购物车当前锁定的卖家（空购物车 ok=false）
func currentSellerID(items []Item) (uint, bool) {
	if len(items) == 0 {
		return 0, false
	}
	return items[0].Seller.ID, true
}

// conflictsWith 判断候选商品是否与购物车既有卖家冲突。
// 分类完全不参与判定，只看卖家。
func conflictsWith(items []Item, candidate Candidate) bool {
	sellerID, ok := currentSellerID(items)
	if !ok {
		return false
	}
	return candidate.Seller.ID != sellerID
}

// suspendLocked 将冲突商品挂起为待确认并请求弹窗，本操作不发远端请求
func (s *Store) suspendLocked(candidate Candidate) {
	pending := candidate
	s.pending = &pending
	s.showDlg = true
}
