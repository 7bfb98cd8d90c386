package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"wingman_server/routes"
	"wingman_server/services"
	"wingman_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments configure the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	// Initialize DynamoDB client and the profile store
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	profileStore := services.NewDynamoProfileStore(dynamoService)
	log.Println("DynamoDB client initialized.")

	// Initialize the Socket.IO server for match notifications
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	userProfileService := &services.UserProfileService{Store: profileStore}
	swipePoolService := &services.SwipePoolService{Store: profileStore}
	decisionService := &services.DecisionService{
		Store:    profileStore,
		Pools:    swipePoolService,
		Notifier: &socket.MatchNotifier{Server: socketServer},
	}
	matchRegistryService := &services.MatchRegistryService{Store: profileStore}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Wingman")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterSwipeRoutes(r, swipePoolService, decisionService)
	routes.RegisterMatchRoutes(r, matchRegistryService)
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
