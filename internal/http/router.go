package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/NuryND000/backend-gr-coin-v3/internal/config"
	h "github.com/NuryND000/backend-gr-coin-v3/internal/http/handlers"
	"github.com/NuryND000/backend-gr-coin-v3/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth(env.JWTSecret)
	admin := middleware.RequireAdmin()

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)

	// Auth
	r.POST("/register", h.Register)
	r.POST("/login", h.Login(env.JWTSecret))
	r.POST("/changepassword", auth, h.ChangePassword)

	// Users
	r.PUT("/user/:id", auth, h.UpdateUser)
	r.DELETE("/user/:id", auth, admin, h.DeleteUser)
	r.GET("/users", auth, admin, h.GetUsers)

	// Coin exchange
	r.POST("/coinexchange/:id", auth, h.CreateCoinExchange)
	r.PUT("/coinexchange/:id", auth, h.UpdateCoinExchange)
	r.DELETE("/coinexchange/:id", auth, admin, h.DeleteCoinExchange)
	r.GET("/coinexchange", auth, h.GetCoinExchanges)
	r.GET("/coinexchange/all", auth, admin, h.GetAllCoinExchanges)
	r.GET("/coinexchange/report", auth, admin, h.GetCoinExchangeReportPDF)

	// Coin transaction
	r.POST("/cointransaction", auth, h.CreateCoinTransaction)
	r.PUT("/cointransaction/:id", auth, h.UpdateCoinTransaction)
	r.DELETE("/cointransaction/:id", auth, admin, h.DeleteCoinTransaction)
	r.GET("/cointransaction", auth, h.GetCoinTransactions)
	r.GET("/cointransaction/all", auth, admin, h.GetAllCoinTransactions)

	// Complaint (create sengaja tanpa auth, kompatibel dengan API lama)
	r.POST("/complaint/:id", h.CreateComplaint)
	r.PUT("/complaint/:id", auth, h.UpdateComplaint)
	r.DELETE("/complaint/:id", auth, admin, h.DeleteComplaint)
	r.GET("/complaint", auth, h.GetComplaints)
	r.GET("/complaint/all", auth, admin, h.GetAllComplaints)

	return r
}
