package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/harber-marketplace/harber-client/internal/api"
	"github.com/harber-marketplace/harber-client/internal/cart"
	"github.com/harber-marketplace/harber-client/internal/config"
	"github.com/harber-marketplace/harber-client/internal/logger"
	"github.com/harber-marketplace/harber-client/internal/models"
	"github.com/harber-marketplace/harber-client/internal/repository"
)

const usage = `Harber Marketplace 客户端

用法:
  client [flags] <command> [args]

命令:
  sync                 从服务端拉取购物车
  list                 列出商品
  cart                 查看本地购物车
  add <product_id>     加入购物车（换卖家时交互确认）
  qty <item_id> <n>    修改数量（0 等价删除）
  remove <item_id>     删除购物车项
  clear                清空购物车
  total                购物车合计
  checkout             以当前购物车下单
`

// terminalNotifier 将购物车失败提示打印到终端
type terminalNotifier struct{}

func (terminalNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, "! "+message)
}

func main() {
	userID := flag.Uint("user", 1, "用户 ID（本地联调签发令牌用）")
	yes := flag.Bool("yes", false, "换卖家时不询问直接确认")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	ctx := context.Background()

	client, err := api.NewClient(api.Config{
		BaseURL:        cfg.API.BaseURL,
		TimeoutSeconds: cfg.API.TimeoutSeconds,
	})
	if err != nil {
		stdLog.Fatalf("创建 API 客户端失败: %v", err)
	}

	// 没有配置令牌时向本地服务端签发一枚开发令牌
	token := cfg.API.Token
	if token == "" {
		token, err = client.IssueToken(ctx, *userID)
		if err != nil {
			stdLog.Fatalf("签发开发令牌失败: %v", err)
		}
	}
	client, err = api.NewClient(api.Config{
		BaseURL:        cfg.API.BaseURL,
		TimeoutSeconds: cfg.API.TimeoutSeconds,
		TokenProvider:  api.StaticToken(token),
	})
	if err != nil {
		stdLog.Fatalf("创建 API 客户端失败: %v", err)
	}

	// 本地快照库
	storeDB, err := models.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		stdLog.Fatalf("打开本地快照库失败: %v", err)
	}
	snapshots, err := repository.NewSnapshotRepository(storeDB)
	if err != nil {
		stdLog.Fatalf("初始化快照仓库失败: %v", err)
	}

	store, err := cart.NewStore(cart.Options{
		Client:    client,
		Snapshots: snapshots,
		Profile:   cfg.Storage.Profile,
		Notifier:  terminalNotifier{},
		Logger:    logger.S(),
	})
	if err != nil {
		stdLog.Fatalf("初始化购物车失败: %v", err)
	}

	if err := runCommand(ctx, client, store, *yes, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, client *api.Client, store *cart.Store, yes bool, args []string) error {
	switch args[0] {
	case "sync":
		store.SyncWithServer(ctx)
		printCart(store)
		return nil
	case "list":
		return listProducts(ctx, client)
	case "cart":
		printCart(store)
		return nil
	case "add":
		productID, err := parseID(args, 1, "product_id")
		if err != nil {
			return err
		}
		return addItem(ctx, client, store, yes, productID)
	case "qty":
		itemID, err := parseID(args, 1, "item_id")
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return fmt.Errorf("qty 需要数量参数")
		}
		quantity, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("无效数量 %q", args[2])
		}
		store.UpdateQuantity(ctx, itemID, quantity)
		printCart(store)
		return nil
	case "remove":
		itemID, err := parseID(args, 1, "item_id")
		if err != nil {
			return err
		}
		store.RemoveItem(ctx, itemID)
		printCart(store)
		return nil
	case "clear":
		store.ClearCart(ctx)
		printCart(store)
		return nil
	case "total":
		fmt.Println("Total:", store.Total().String())
		return nil
	case "checkout":
		order, err := client.CreateOrder(ctx)
		if err != nil {
			return err
		}
		store.SyncWithServer(ctx)
		fmt.Printf("订单已创建: %s 合计 %s\n", order.OrderNo, order.TotalAmount)
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("未知命令 %q", args[0])
	}
}

func addItem(ctx context.Context, client *api.Client, store *cart.Store, yes bool, productID uint) error {
	product, err := client.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	store.AddItem(ctx, cart.CandidateFromProduct(*product))

	controller := cart.NewConfirmController(store)
	if controller.Visible() {
		pending := controller.Pending()
		if !yes && !promptConfirm(pending) {
			controller.Cancel()
			fmt.Println("已取消，购物车保持原样")
			printCart(store)
			return nil
		}
		controller.Confirm(ctx)
	}
	printCart(store)
	return nil
}

// promptConfirm 在终端询问是否清空购物车换卖家
func promptConfirm(pending *cart.Candidate) bool {
	if pending == nil {
		return false
	}
	fmt.Printf("购物车中已有其他店铺的商品。清空并加入 %q（%s）？[y/N] ",
		pending.Name, pending.Seller.ShopName)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func listProducts(ctx context.Context, client *api.Client) error {
	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		shop := ""
		if p.Seller != nil {
			shop = p.Seller.ShopName
		}
		fmt.Printf("%4d  %-30s  %12s  stok %-3d  %s\n", p.ID, p.Name, p.Price, p.Stock, shop)
	}
	return nil
}

func printCart(store *cart.Store) {
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("(keranjang kosong)")
		return
	}
	for _, item := range items {
		fmt.Printf("%4d  %-30s  x%-3d  %12s  %s\n",
			item.ID, item.Name, item.Quantity, item.Price.String(), item.Seller.ShopName)
	}
	fmt.Println("Total:", store.Total().String())
}

func parseID(args []string, idx int, name string) (uint, error) {
	if len(args) <= idx {
		return 0, fmt.Errorf("缺少参数 %s", name)
	}
	id, err := strconv.ParseUint(args[idx], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("无效 %s %q", name, args[idx])
	}
	return uint(id), nil
}
