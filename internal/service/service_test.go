package service

import (
	"testing"

	"social-platform/config"
	"social-platform/internal/model"
	"social-platform/internal/repository"
	"social-platform/pkg/token"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Post{}, &model.Like{}, &model.Comment{}, &model.Message{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newTokenService() *token.Service {
	return token.NewService(config.JWTConfig{
		Secret: "test-secret",
		Issuer: "test",
	})
}

func newUserService(t *testing.T, db *gorm.DB, requireVerification bool) *UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepository(db), newTokenService(), requireVerification)
}

// registerVerified creates a ready-to-login account regardless of the
// service's verification policy.
func registerVerified(t *testing.T, db *gorm.DB, name, email, password string) *model.User {
	t.Helper()

	svc := newUserService(t, db, false)
	result, err := svc.Register(name, email, password, "1990-01-01", "")
	require.NoError(t, err)
	return result.User
}
