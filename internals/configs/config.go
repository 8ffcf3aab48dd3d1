package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

/* =======================
   POLICY VALUES
   Exam lead time, passing threshold, working-time lookback and the
   minimum-wage table are policy inputs, not domain constants: they come
   from ENV so statutory updates never require a code change.
======================= */

type CompliancePolicy struct {
	ExamRegistrationLeadDays int
	ExamPassingThreshold     float64
	WorkingTimeLookbackDays  int
	// Minimum monthly gross in cents, indexed by training year (1-based).
	MinimumWageCentsByYear []int64
}

// LoadCompliancePolicy reads the policy block from ENV. Defaults follow the
// Mindestausbildungsvergütung figures for cohorts starting 2024.
func LoadCompliancePolicy() CompliancePolicy {
	return CompliancePolicy{
		ExamRegistrationLeadDays: GetEnvInt("EXAM_REGISTRATION_LEAD_DAYS", 42),
		ExamPassingThreshold:     GetEnvFloat("EXAM_PASSING_THRESHOLD", 50.0),
		WorkingTimeLookbackDays:  GetEnvInt("WORKING_TIME_LOOKBACK_DAYS", 30),
		MinimumWageCentsByYear: []int64{
			int64(GetEnvInt("MINIMUM_WAGE_CENTS_YEAR_1", 64900)),
			int64(GetEnvInt("MINIMUM_WAGE_CENTS_YEAR_2", 76600)),
			int64(GetEnvInt("MINIMUM_WAGE_CENTS_YEAR_3", 87600)),
			int64(GetEnvInt("MINIMUM_WAGE_CENTS_YEAR_4", 90900)),
		},
	}
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Info,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	} else {
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
