package main

import (
	"context"
	"log"

	"github.com/biblion/gamevault/internal/auth"
	"github.com/biblion/gamevault/internal/cart"
	"github.com/biblion/gamevault/internal/catalog"
	"github.com/biblion/gamevault/internal/config"
	"github.com/biblion/gamevault/internal/order"
	"github.com/biblion/gamevault/internal/review"
	"github.com/biblion/gamevault/internal/storage"
	"github.com/biblion/gamevault/internal/wishlist"
)

// @title GameVault Store API
// @version 1.0
// @description Game storefront: catalog, cart, checkout, orders, reviews.
// @BasePath /
func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := storage.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[store] %v", err)
	}
	defer pool.Close()

	if err := storage.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("[store] %v", err)
	}

	cat := catalog.Default()
	svcs := services{
		auth:     auth.NewService(auth.NewPGRepo(pool), cfg.SessionTTL, cfg.BcryptCost),
		catalog:  cat,
		cart:     cart.NewService(cart.NewPGRepo(pool)),
		review:   review.NewService(review.NewPGRepo(pool)),
		order:    order.NewService(order.NewPGRepo(pool), cat),
		wishlist: wishlist.NewService(wishlist.NewPGRepo(pool)),
	}

	r := newRouter(svcs)
	log.Printf("store-service listening on %s", cfg.StoreSvcAddr)
	log.Fatal(r.Run(cfg.StoreSvcAddr))
}
