package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/biblion/gamevault/docs"
	"github.com/biblion/gamevault/internal/auth"
	"github.com/biblion/gamevault/internal/cart"
	"github.com/biblion/gamevault/internal/catalog"
	"github.com/biblion/gamevault/internal/httpx"
	"github.com/biblion/gamevault/internal/order"
	"github.com/biblion/gamevault/internal/review"
	"github.com/biblion/gamevault/internal/wishlist"
)

// respondErr maps domain sentinels to HTTP statuses. Anything unclassified
// is logged via the gin error list and surfaced as a generic 500.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, cart.ErrDuplicate),
		errors.Is(err, review.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, auth.ErrInvalidArgument),
		errors.Is(err, cart.ErrInvalidArgument),
		errors.Is(err, review.ErrInvalidArgument),
		errors.Is(err, wishlist.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, review.ErrNotFound), errors.Is(err, order.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ---------- auth ----------

type signUpRequest struct {
	Name     string `json:"name"     example:"Ada"`
	Email    string `json:"email"    example:"ada@example.com"`
	Password string `json:"password" example:"hunter22"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signUpHandler godoc
// @Summary Register a user and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} auth.Credentials
// @Router /auth/signup [post]
func signUpHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		creds, err := svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, creds)
	}
}

// signInHandler godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} auth.Credentials
// @Router /auth/signin [post]
func signInHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		creds, err := svc.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, creds)
	}
}

// signOutHandler godoc
// @Summary Close the current session
// @Tags auth
// @Produce json
// @Router /auth/signout [post]
func signOutHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.SignOut(c.Request.Context(), auth.TokenFromRequest(c)); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------- catalog ----------

// listGamesHandler godoc
// @Summary List the game catalog
// @Tags games
// @Produce json
// @Success 200 {object} map[string][]catalog.Game
// @Router /games [get]
func listGamesHandler(cat catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"games": cat.List()})
	}
}

// getGameHandler godoc
// @Summary Fetch one game by id
// @Tags games
// @Produce json
// @Success 200 {object} catalog.Game
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func getGameHandler(cat catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := cat.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

// ---------- cart ----------

// listCartHandler godoc
// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Success 200 {object} map[string][]cart.Item
// @Router /cart [get]
func listCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// addCartItemHandler godoc
// @Summary Add a game to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Success 201 {object} map[string]cart.Item
// @Failure 409 {object} map[string]string
// @Router /cart [post]
func addCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.AddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		it, err := svc.Add(c.Request.Context(), c.GetString("user_id"), req.GameID, req.StoreName, req.Price)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": it})
	}
}

// removeCartItemHandler godoc
// @Summary Remove a game from the cart (idempotent)
// @Tags cart
// @Produce json
// @Param gameId query string true "game id"
// @Router /cart [delete]
func removeCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), c.GetString("user_id"), c.Query("gameId")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------- reviews ----------

// listReviewsHandler godoc
// @Summary List reviews for a game, newest first
// @Tags reviews
// @Produce json
// @Param gameId query string true "game id"
// @Success 200 {object} map[string][]review.Review
// @Router /reviews [get]
func listReviewsHandler(svc *review.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context(), c.Query("gameId"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": out})
	}
}

// createReviewHandler godoc
// @Summary Submit a review (one per user per game)
// @Tags reviews
// @Accept json
// @Produce json
// @Success 201 {object} map[string]review.Review
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func createReviewHandler(svc *review.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req review.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		rv, err := svc.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), req)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"review": rv})
	}
}

// markHelpfulHandler godoc
// @Summary Mark a review as helpful
// @Tags reviews
// @Accept json
// @Produce json
// @Failure 404 {object} map[string]string
// @Router /reviews/helpful [post]
func markHelpfulHandler(svc *review.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ReviewID string `json:"review_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if err := svc.MarkHelpful(c.Request.Context(), req.ReviewID); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// deleteReviewHandler godoc
// @Summary Delete the caller's own review
// @Tags reviews
// @Produce json
// @Param reviewId query string true "review id"
// @Failure 404 {object} map[string]string
// @Router /reviews [delete]
func deleteReviewHandler(svc *review.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.GetString("user_id"), c.Query("reviewId")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------- orders ----------

// placeOrderHandler godoc
// @Summary Check out: convert the cart into an order
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "retry-safe checkout key"
// @Success 201 {object} order.WithItems
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func placeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		// body is optional; an empty body means default payment method
		_ = c.ShouldBindJSON(&req)
		out, err := svc.PlaceOrder(c.Request.Context(), c.GetString("user_id"),
			req.PaymentMethod, c.GetHeader("Idempotency-Key"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": out})
	}
}

// listOrdersHandler godoc
// @Summary List the caller's orders, newest first, with items
// @Tags orders
// @Produce json
// @Success 200 {object} map[string][]order.WithItems
// @Router /orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListOrders(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

// ---------- wishlist ----------

func listWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func addWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			GameID string `json:"game_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if err := svc.Add(c.Request.Context(), c.GetString("user_id"), req.GameID); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func removeWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), c.GetString("user_id"), c.Query("gameId")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------- router ----------

type services struct {
	auth     *auth.Service
	catalog  catalog.Provider
	cart     *cart.Service
	review   *review.Service
	order    *order.Service
	wishlist *wishlist.Service
}

func newRouter(s services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/signup", signUpHandler(s.auth))
	r.POST("/auth/signin", signInHandler(s.auth))
	r.POST("/auth/signout", signOutHandler(s.auth))

	r.GET("/games", listGamesHandler(s.catalog))
	r.GET("/games/:id", getGameHandler(s.catalog))

	// review listing is the only user-content read open to anonymous callers
	r.GET("/reviews", listReviewsHandler(s.review))

	authed := r.Group("/", auth.RequireUser(s.auth))
	{
		authed.GET("/cart", listCartHandler(s.cart))
		authed.POST("/cart", addCartItemHandler(s.cart))
		authed.DELETE("/cart", removeCartItemHandler(s.cart))

		authed.POST("/reviews", createReviewHandler(s.review))
		authed.POST("/reviews/helpful", markHelpfulHandler(s.review))
		authed.DELETE("/reviews", deleteReviewHandler(s.review))

		authed.POST("/orders", placeOrderHandler(s.order))
		authed.GET("/orders", listOrdersHandler(s.order))

		authed.GET("/wishlist", listWishlistHandler(s.wishlist))
		authed.POST("/wishlist", addWishlistHandler(s.wishlist))
		authed.DELETE("/wishlist", removeWishlistHandler(s.wishlist))
	}

	return r
}
