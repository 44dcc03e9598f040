// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Registration only hands out the volunteer and organization roles, so the
// admin_email promotion here is how the first admin comes to exist.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdmin promotes the user with the given email to the admin role.
// A missing user is not an error: the account may simply not have
// registered yet, and the promotion reruns at every startup.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	email = strings.ToLower(strings.TrimSpace(email))

	res := deps.MongoDatabase.Collection("users").FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"role":       string(authz.RoleAdmin),
			"updated_at": time.Now().UTC(),
		}},
	)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Info("admin_email set but no matching user; register the account to claim it",
				zap.String("email", email))
			return nil
		}
		return err
	}

	logger.Info("ensured admin user", zap.String("email", email))
	return nil
}
