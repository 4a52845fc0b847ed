package http

import (
	"github.com/gin-gonic/gin"

	"coursepay/internal/controller/http/handlers"
)

type Router struct {
	cart     handlers.CartHandler
	checkout handlers.CheckoutHandler
	payment  handlers.PaymentHandler
	payout   handlers.PayoutHandler
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/carts/items", r.cart.AddItem)
	engine.GET("/carts", r.cart.Get)

	engine.POST("/checkout", r.checkout.Checkout)

	engine.GET("/orders/:order_id/approval-url", r.payment.ApprovalURL)
	engine.POST("/payments/capture", r.payment.Capture)

	engine.POST("/payouts", r.payout.Request)
	engine.POST("/payouts/:payout_id/approve", r.payout.Approve)
	engine.POST("/payouts/:payout_id/deny", r.payout.Deny)
	engine.GET("/wallets/:user_id", r.payout.Wallet)
}

func NewRouter(
	cart handlers.CartHandler,
	checkout handlers.CheckoutHandler,
	payment handlers.PaymentHandler,
	payout handlers.PayoutHandler,
) *Router {
	return &Router{
		cart:     cart,
		checkout: checkout,
		payment:  payment,
		payout:   payout,
	}
}
