package routes

import (
	"github.com/wilhan1771-lgtm/belajar/controllers"
	"github.com/wilhan1771-lgtm/belajar/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)

		auth := api.Group("/", middlewares.AuthMiddleware())
		{
			supplier := auth.Group("/supplier")
			{
				supplier.GET("/", controllers.GetAllSupplier)
				supplier.GET("/:id", controllers.GetSupplierByID)
				supplier.POST("/", controllers.CreateSupplier)
				supplier.PUT("/:id", controllers.UpdateSupplier)
				supplier.DELETE("/:id", controllers.DeleteSupplier)
			}

			jenis := auth.Group("/jenis")
			{
				jenis.GET("/", controllers.GetAllJenis)
				jenis.POST("/", controllers.CreateJenis)
				jenis.PUT("/:id", controllers.UpdateJenis)
				jenis.DELETE("/:id", controllers.DeleteJenis)
			}

			receiving := auth.Group("/receiving")
			{
				receiving.GET("/", controllers.ReceivingList)
				receiving.GET("/:id", controllers.ReceivingDetail)
				receiving.POST("/", controllers.ReceivingCreate)
				receiving.PUT("/:id", controllers.ReceivingUpdate)
				receiving.DELETE("/:id", controllers.ReceivingDelete)

				// invoice dibuat dari receiving-nya
				receiving.POST("/:id/invoice", controllers.InvoiceGenerate)
			}

			invoice := auth.Group("/invoice")
			{
				invoice.GET("/", controllers.InvoiceList)
				invoice.GET("/:id", controllers.InvoiceDetail)
				invoice.PUT("/:id", controllers.InvoiceUpdate)
				invoice.POST("/:id/finalize", controllers.InvoiceFinalize)
				invoice.POST("/:id/void", controllers.InvoiceVoid)
				invoice.POST("/:id/rebuild", controllers.InvoiceRebuild)
			}
		}
	}
}
