package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/controllers"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/middlewares"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// invoice download is public so the buyer link works without a token
		api.GET("/sales/:id/invoice", controllers.DownloadInvoice)

		authed := api.Group("", middlewares.Auth())
		{
			authed.GET("/auth/profile", controllers.Profile)

			bikes := authed.Group("/bikes")
			{
				bikes.GET("", controllers.GetAllBikes)
				bikes.GET("/stats/overview", controllers.BikeStatsOverview)
				bikes.GET("/:id", controllers.GetBikeByID)
				bikes.POST("", controllers.CreateBike)
				bikes.PUT("/:id", controllers.UpdateBike)
				bikes.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteBike)
			}

			customers := authed.Group("/customers")
			{
				customers.GET("", controllers.GetAllCustomers)
				customers.GET("/stats/overview", controllers.CustomerStatsOverview)
				customers.GET("/:id", controllers.GetCustomerByID)
				customers.POST("", controllers.CreateCustomer)
				customers.PUT("/:id", controllers.UpdateCustomer)
				customers.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteCustomer)
			}

			sales := authed.Group("/sales")
			{
				sales.GET("", controllers.GetAllSales)
				sales.GET("/stats/overview", controllers.SaleStatsOverview)
				sales.GET("/:id", controllers.GetSaleByID)
				sales.POST("", controllers.CreateSale)
			}

			payments := authed.Group("/payments")
			{
				payments.GET("", controllers.GetAllPayments)
				payments.GET("/stats/overview", controllers.PaymentStatsOverview)
				payments.GET("/:id", controllers.GetPaymentByID)
				payments.POST("/:id/record", controllers.RecordPayment)
			}

			finance := authed.Group("/finance")
			{
				finance.GET("", controllers.GetAllFinance)
				finance.GET("/stats/overview", controllers.FinanceStatsOverview)
				finance.GET("/:id", controllers.GetFinanceByID)
				finance.POST("", controllers.CreateFinance)
				finance.PUT("/:id", controllers.UpdateFinance)
				finance.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteFinance)
				finance.GET("/:id/transactions", controllers.GetFinanceTransactions)
				finance.POST("/:id/transactions", controllers.AddFinanceTransaction)
			}

			expenses := authed.Group("/expenses")
			{
				expenses.GET("", controllers.GetAllExpenses)
				expenses.GET("/stats/overview", controllers.ExpenseStatsOverview)
				expenses.GET("/:id", controllers.GetExpenseByID)
				expenses.POST("", controllers.CreateExpense)
				expenses.PUT("/:id", controllers.UpdateExpense)
				expenses.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteExpense)
			}

			revenue := authed.Group("/revenue")
			{
				revenue.GET("", controllers.GetAllRevenue)
				revenue.GET("/stats/overview", controllers.RevenueStatsOverview)
				revenue.GET("/:id", controllers.GetRevenueByID)
				revenue.POST("", controllers.CreateRevenue)
				revenue.PUT("/:id", controllers.UpdateRevenue)
				revenue.DELETE("/:id", middlewares.RequireRole("admin"), controllers.DeleteRevenue)
			}

			reports := authed.Group("/reports")
			{
				reports.GET("/bikes", controllers.ReportBikes)
				reports.GET("/sales", controllers.ReportSales)
				reports.GET("/expenses", controllers.ReportExpenses)
				reports.GET("/revenue", controllers.ReportRevenue)
				reports.GET("/profit", controllers.ReportProfit)
			}

			insights := authed.Group("/insights")
			{
				insights.GET("", controllers.GetInsights)
				insights.GET("/price-suggestion", controllers.PriceSuggestion)
				insights.GET("/demand-trend", controllers.DemandTrend)
			}
		}
	}
}
