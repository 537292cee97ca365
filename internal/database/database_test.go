package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestDefaultedOptions(t *testing.T) {
	t.Run("nil options get full defaults", func(t *testing.T) {
		opts := defaultedOptions(nil)

		assert.Equal(t, logger.Error, opts.LogLevel)
		assert.Equal(t, 20, opts.MaxOpenConns)
		assert.Equal(t, 10, opts.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, opts.ConnMaxLifetime)
		assert.Equal(t, 10*time.Minute, opts.ConnMaxIdleTime)
		assert.False(t, opts.SkipAutoMigrate)
	})

	t.Run("skip auto-migrate is preserved", func(t *testing.T) {
		opts := defaultedOptions(&Options{SkipAutoMigrate: true})

		assert.True(t, opts.SkipAutoMigrate)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		opts := defaultedOptions(&Options{
			LogLevel:     logger.Info,
			MaxOpenConns: 5,
		})

		assert.Equal(t, logger.Info, opts.LogLevel)
		assert.Equal(t, 5, opts.MaxOpenConns)
		assert.Equal(t, 10, opts.MaxIdleConns)
	})
}
