package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tradeverity/governance-core/authenticator"
	"github.com/tradeverity/governance-core/config"
	"github.com/tradeverity/governance-core/controllers"
	"github.com/tradeverity/governance-core/database"
	authmiddleware "github.com/tradeverity/governance-core/middleware"
	"github.com/tradeverity/governance-core/repositories"
	"github.com/tradeverity/governance-core/services"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos, cfg.ActivationBuildEnabled)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Initialize OIDC provider for the admin surface
	auth, err := authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
		Domain:       cfg.OIDCDomain,
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		CallbackURL:  cfg.OIDCCallbackURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize OIDC provider: %v", err)
	}

	// Set up router
	r, err := setupRouter(ctrl, auth, cfg)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	log.Printf("Governance core starting on port %s (database: %s, activation build: %t)",
		cfg.Port, cfg.DatabasePath, cfg.ActivationBuildEnabled)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth authenticator.Provider, cfg *config.Config) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "governance_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.Login(auth))
	r.Get("/callback", ctrl.Auth.Callback(auth))
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "governance-core"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Use(authmiddleware.ActorContext)

		// Audit ledger
		r.Route("/audit", func(r chi.Router) {
			r.Post("/records", ctrl.Ledger.Write)
			r.Get("/records/{auditID}", ctrl.Ledger.Get)
			r.Get("/verify", ctrl.Ledger.Verify)
		})

		// Versioned policy configuration
		policyRoutes := func(c *controllers.PolicyController) func(chi.Router) {
			return func(r chi.Router) {
				r.Post("/", c.Create)
				r.Get("/{tenantID}", c.GetActive)
				r.Get("/{tenantID}/history", c.History)
				r.Put("/{configID}", c.Update)
			}
		}
		r.Route("/policies/fee", policyRoutes(ctrl.FeePolicy))
		r.Route("/policies/fx", policyRoutes(ctrl.FXPolicy))
		r.Route("/policies/escrow", policyRoutes(ctrl.EscrowPolicy))

		// Settlement holds
		r.Route("/holds", func(r chi.Router) {
			r.Get("/", ctrl.Holds.List)
			r.Post("/", ctrl.Holds.Create)
			r.Post("/{holdID}/override", ctrl.Holds.Override)
		})

		// Change control
		r.Route("/change-control", func(r chi.Router) {
			r.Get("/", ctrl.ChangeControl.List)
			r.Post("/", ctrl.ChangeControl.Create)
		})

		// Authority multisig (build phase only)
		r.Route("/multisig", func(r chi.Router) {
			r.Post("/proposals", ctrl.Multisig.CreateProposal)
			r.Post("/proposals/{proposalID}/approvals", ctrl.Multisig.RecordApproval)
			r.Post("/proposals/{proposalID}/quorum", ctrl.Multisig.ComputeQuorum)
			r.Post("/proposals/{proposalID}/plan", ctrl.Multisig.BuildPlan)
			r.Post("/activate", ctrl.Multisig.TriggerActivation)
			r.Post("/execute", ctrl.Multisig.Execute)
		})
	})

	return r, nil
}
