package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Store{},
		&model.Product{},
		&model.Purchase{},
		&model.Sale{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	stockRepo := infraRepo.NewStockGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator())
	userUC := usecase.NewUserUsecase(userRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	storeUC := usecase.NewStoreUsecase(storeRepo)
	purchaseUC := usecase.NewPurchaseUsecase(txManager)
	saleUC := usecase.NewSaleUsecase(txManager, cfg.RejectNegativeStock)
	reportUC := usecase.NewReportUsecase(purchaseRepo, saleRepo, stockRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC, cfg.CookieSecure),
		User:     handler.NewUserHandler(userUC),
		Product:  handler.NewProductHandler(productUC),
		Store:    handler.NewStoreHandler(storeUC),
		Purchase: handler.NewPurchaseHandler(purchaseUC, reportUC),
		Sale:     handler.NewSaleHandler(saleUC, reportUC),
		Report:   handler.NewReportHandler(reportUC),
	}

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, handlers)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
