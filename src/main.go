package main

import (
	_ "Backend-CheckIn-Passport/docs"
	"Backend-CheckIn-Passport/src/controllers"
	"Backend-CheckIn-Passport/src/database"
	"Backend-CheckIn-Passport/src/jobs"
	"Backend-CheckIn-Passport/src/routes"
	"Backend-CheckIn-Passport/src/services/analytics"
	"Backend-CheckIn-Passport/src/services/cache"
	"Backend-CheckIn-Passport/src/services/passport"
	"Backend-CheckIn-Passport/src/services/repository"
	"Backend-CheckIn-Passport/src/services/snapshot"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
)

// @title                       Check-in Passport API
// @version                     1.0
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	database.LoadEnv()

	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("❌ Error connecting to the database: %v", err)
	}

	// Redis เป็น optional: ไม่มีก็ไม่มี cache/queue
	database.InitRedis()
	database.InitAsynq()

	source := repository.NewMongoSource(cache.NewRedisCache(database.RedisClient, "passport"))
	store := snapshot.NewStore(source, 15*time.Second)
	if _, err := store.Refresh(context.Background()); err != nil {
		log.Printf("⚠️ Initial snapshot load failed: %v", err)
	}

	poller := snapshot.NewPoller(store, snapshot.PollInterval)
	if os.Getenv("POLLING_ENABLED") == "true" {
		poller.Start(context.Background())
	}

	var worker *asynq.Server
	if database.AsynqClient != nil {
		var err error
		if worker, err = jobs.StartWorker(database.AsynqRedisOpt(), store); err != nil {
			log.Printf("⚠️ Asynq worker not started: %v", err)
		}
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5173"
	}

	h := &controllers.Handler{
		Store:       store,
		Poller:      poller,
		Analytics:   analytics.NewService(store, cache.NewRedisCache(database.RedisClient, "analytics")),
		Passport:    passport.NewService(source, store),
		History:     source,
		Logs:        source,
		Invalidator: source,
		Asynq:       database.AsynqClient,
		BaseURL:     baseURL,
	}

	// สร้าง app instance
	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, h)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	go func() {
		log.Println("Server is running on port " + appURI)
		if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	poller.Stop()
	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	_ = app.ShutdownWithTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.DisconnectMongoDB(ctx); err != nil {
		log.Printf("⚠️ MongoDB disconnect: %v", err)
	}
}
