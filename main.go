package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/medcare/medcare-server/config"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/cron"
	"github.com/medcare/medcare-server/db"
	"github.com/medcare/medcare-server/redis"
	"github.com/medcare/medcare-server/repository"
	"github.com/medcare/medcare-server/routes"
	"github.com/medcare/medcare-server/services"
	"github.com/medcare/medcare-server/utils"
)

func main() {
	config.Load()
	utils.InitializeLogger()

	db.Init()
	db.Migrate()
	redis.InitRedis()

	doctorRepo := repository.NewGormDoctorRepository(db.DB)
	serviceRepo := repository.NewGormServiceRepository(db.DB)
	appointmentRepo := repository.NewGormAppointmentRepository(db.DB)
	userRepo := repository.NewGormUserRepository(db.DB)

	availability := services.NewAvailabilityChecker(doctorRepo, appointmentRepo)
	appointmentSvc := services.NewAppointmentService(appointmentRepo, serviceRepo, availability, utils.GetLogger())
	doctorSvc := services.NewDoctorService(doctorRepo)
	catalogSvc := services.NewCatalogService(serviceRepo)
	userSvc := services.NewUserService(userRepo)
	reportSvc := services.NewReportService(appointmentSvc)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("MedCare server is running")
	})

	routes.Setup(app, routes.Controllers{
		Auth:         controllers.NewAuthController(userSvc),
		Users:        controllers.NewUserController(userSvc),
		Doctors:      controllers.NewDoctorController(doctorSvc),
		Services:     controllers.NewServiceController(catalogSvc),
		Appointments: controllers.NewAppointmentController(appointmentSvc),
		Reports:      controllers.NewReportController(reportSvc),
	})

	if _, err := cron.StartCronJobs(appointmentRepo); err != nil {
		log.Fatalf("Failed to start cron jobs: %v", err)
	}

	if err := app.Listen(":" + config.AppConfig.AppPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
