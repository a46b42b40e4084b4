package main

import (
	"log"

	"keebshop/internal/config"
	"keebshop/internal/domain/model"
	"keebshop/internal/handler"
	"keebshop/internal/infra/db"
	"keebshop/internal/infra/googleauth"
	infraRepo "keebshop/internal/infra/repository"
	infraSession "keebshop/internal/infra/session"
	"keebshop/internal/logger"
	"keebshop/internal/middleware"
	"keebshop/internal/server"
	"keebshop/internal/usecase"
	auth "keebshop/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .envがあれば読む（無くても続行）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.GoEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		zlog.Fatal("db connect failed", zap.Error(err))
	}

	// スキーマ作成（seedとは別の一回きりの構造操作）
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
	); err != nil {
		zlog.Fatal("migrate failed", zap.Error(err))
	}

	//セッションストア（Redis）
	redisClient, err := infraSession.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}
	sessionStore := infraSession.NewRedisStore(redisClient, cfg.SessionTTL)

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//GoogleのIDトークン検証
	googleVerifier := googleauth.NewVerifier(cfg.GoogleClientID)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, verifier)
	googleUC := auth.NewGoogleLoginUsecase(userRepo, googleVerifier, hasher)
	cartUC := usecase.NewCartUsecase(productRepo)
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	builderUC := usecase.NewBuilderUsecase()

	//セッション管理
	sessions := middleware.NewSessionManager(sessionStore, zlog)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC, googleUC, sessions, zlog)
	shopH := handler.NewShopHandler(cartUC, catalogUC, userRepo, sessions, zlog)
	builderH := handler.NewBuilderHandler(builderUC)

	//Server起動
	e := server.New(zlog, sessions, authH, shopH, builderH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	zlog.Info("listening", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
