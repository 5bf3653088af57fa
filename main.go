package main

import (
	"log"

	"student-directory/config"
	"student-directory/handlers"
	"student-directory/middleware"
	"student-directory/registry"
)

func main() {
	log.Println("🚀 Starting Student Directory Server...")

	cfg := config.Load()
	log.Printf("📋 Configuration loaded: Server Port %s", cfg.ServerPort)

	students := registry.NewStudentRegistry()
	groups := registry.NewGroupRegistry(students)

	studentHandler := handlers.NewStudentHandler(students)
	groupHandler := handlers.NewGroupHandler(groups)

	r := handlers.NewRouter(studentHandler, groupHandler)
	r.Use(middleware.Logging)

	srv := newServer(cfg, middleware.CORS(cfg.CORSAllowedOrigins)(r))

	log.Printf("✅ Server listening on %s", srv.Addr)
	log.Printf("🌐 Available at: http://localhost%s", srv.Addr)

	if err := run(srv, cfg.ShutdownTimeout); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
	log.Println("👋 Server stopped")
}
