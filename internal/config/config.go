package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jwalitptl/clinic-voice-api/internal/model"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Store         StoreConfig         `mapstructure:"store"`
	Schedule      ScheduleConfig      `mapstructure:"schedule"`
	Doctors       []DoctorConfig      `mapstructure:"doctors"`
	KnowledgeBase KnowledgeBaseConfig `mapstructure:"knowledge_base"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type StoreConfig struct {
	Driver   string         `mapstructure:"driver"` // "file" or "postgres"
	File     FileConfig     `mapstructure:"file"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type ScheduleConfig struct {
	StartTime   string `mapstructure:"start_time"`
	EndTime     string `mapstructure:"end_time"`
	LunchStart  string `mapstructure:"lunch_start"`
	LunchEnd    string `mapstructure:"lunch_end"`
	SlotMinutes int    `mapstructure:"slot_minutes"`
}

type DoctorConfig struct {
	Name string   `mapstructure:"name"`
	Days []string `mapstructure:"days"`
}

type KnowledgeBaseConfig struct {
	Path     string        `mapstructure:"path"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("store.driver", "file")
	viper.SetDefault("store.file.path", "appointments.json")
	viper.SetDefault("schedule.start_time", "09:00")
	viper.SetDefault("schedule.end_time", "18:00")
	viper.SetDefault("schedule.lunch_start", "13:00")
	viper.SetDefault("schedule.lunch_end", "14:00")
	viper.SetDefault("schedule.slot_minutes", 30)
	viper.SetDefault("knowledge_base.path", "knowledge_base.json")
	viper.SetDefault("knowledge_base.cache_ttl", "5m")
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// DaySchedule parses the hours template out of the raw config.
func (c *Config) DaySchedule() (model.DaySchedule, error) {
	var schedule model.DaySchedule
	var err error

	if schedule.Start, err = model.ParseTimeOfDay(c.Schedule.StartTime); err != nil {
		return schedule, fmt.Errorf("schedule.start_time: %w", err)
	}
	if schedule.End, err = model.ParseTimeOfDay(c.Schedule.EndTime); err != nil {
		return schedule, fmt.Errorf("schedule.end_time: %w", err)
	}
	if schedule.LunchStart, err = model.ParseTimeOfDay(c.Schedule.LunchStart); err != nil {
		return schedule, fmt.Errorf("schedule.lunch_start: %w", err)
	}
	if schedule.LunchEnd, err = model.ParseTimeOfDay(c.Schedule.LunchEnd); err != nil {
		return schedule, fmt.Errorf("schedule.lunch_end: %w", err)
	}
	schedule.SlotDuration = c.Schedule.SlotMinutes

	if err := schedule.Validate(); err != nil {
		return schedule, fmt.Errorf("invalid schedule template: %w", err)
	}
	return schedule, nil
}

// Roster parses the doctor roster out of the raw config.
func (c *Config) Roster() (*model.Roster, error) {
	doctors := make([]model.Doctor, 0, len(c.Doctors))
	for _, dc := range c.Doctors {
		doctor := model.Doctor{Name: dc.Name}
		for _, day := range dc.Days {
			wd, err := model.ParseWeekday(day)
			if err != nil {
				return nil, fmt.Errorf("doctor %q: %w", dc.Name, err)
			}
			doctor.Days = append(doctor.Days, wd)
		}
		doctors = append(doctors, doctor)
	}
	return model.NewRoster(doctors)
}
