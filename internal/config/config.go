package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/restoh/ReservationService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	ReservationStore ReservationStoreConfig `toml:"reservation_store"`
	Booking          BookingConfig          `toml:"booking"`
	Slots            []SlotConfig           `toml:"slots"`
	Tables           []TableConfig          `toml:"tables"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ReservationStoreConfig настройки клиента хранилища бронирований
type ReservationStoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // Секунды
}

// BookingConfig бизнес-политика бронирования
type BookingConfig struct {
	MaxGuests            int `toml:"max_guests"`
	CapacitySlack        int `toml:"capacity_slack"`
	BookingHorizonMonths int `toml:"booking_horizon_months"`
}

// SlotConfig один временной слот каталога
type SlotConfig struct {
	ID      int    `toml:"id"`
	Label   string `toml:"label"`
	Session string `toml:"session"`
}

// TableConfig один столик плана зала
type TableConfig struct {
	ID       int `toml:"id"`
	Capacity int `toml:"capacity"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults(md)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservation-service"
	}
	if c.ReservationStore.Timeout == 0 {
		c.ReservationStore.Timeout = 10
	}
	if c.Booking.MaxGuests == 0 {
		c.Booking.MaxGuests = domain.DefaultMaxGuests
	}
	// Ноль - допустимый запас мест: "не задано" отличается от явного
	// нуля по наличию ключа в файле
	if !md.IsDefined("booking", "capacity_slack") {
		c.Booking.CapacitySlack = domain.DefaultCapacitySlack
	}
	if !md.IsDefined("booking", "booking_horizon_months") {
		c.Booking.BookingHorizonMonths = domain.DefaultBookingHorizonMonths
	}
}

func (c *Config) validate() error {
	if c.ReservationStore.URL == "" {
		return fmt.Errorf("reservation_store.url is required")
	}

	if c.Booking.CapacitySlack < 0 {
		return fmt.Errorf("booking.capacity_slack cannot be negative, got %d", c.Booking.CapacitySlack)
	}
	if c.Booking.BookingHorizonMonths < 0 {
		return fmt.Errorf("booking.booking_horizon_months cannot be negative, got %d", c.Booking.BookingHorizonMonths)
	}

	seen := make(map[int]bool, len(c.Slots))
	for _, s := range c.Slots {
		if seen[s.ID] {
			return fmt.Errorf("duplicate slot id %d in config", s.ID)
		}
		seen[s.ID] = true
		if s.Session != domain.SessionLunch && s.Session != domain.SessionDinner {
			return fmt.Errorf("slot %d has unknown session %q", s.ID, s.Session)
		}
	}

	seenTables := make(map[int]bool, len(c.Tables))
	for _, t := range c.Tables {
		if seenTables[t.ID] {
			return fmt.Errorf("duplicate table id %d in config", t.ID)
		}
		seenTables[t.ID] = true
		if t.Capacity <= 0 {
			return fmt.Errorf("table %d has non-positive capacity %d", t.ID, t.Capacity)
		}
	}

	return nil
}

// SlotCatalog строит каталог слотов из конфигурации.
// Пустой список слотов даёт каталог эталонного ресторана.
func (c *Config) SlotCatalog() *domain.SlotCatalog {
	if len(c.Slots) == 0 {
		return domain.DefaultSlotCatalog()
	}
	slots := make([]domain.TimeSlot, 0, len(c.Slots))
	for _, s := range c.Slots {
		slots = append(slots, domain.TimeSlot{ID: s.ID, Label: s.Label, Session: s.Session})
	}
	return domain.NewSlotCatalog(slots)
}

// FloorPlan строит план зала из конфигурации.
// Пустой список столиков даёт план эталонного зала.
func (c *Config) FloorPlan() *domain.FloorPlan {
	if len(c.Tables) == 0 {
		return domain.DefaultFloorPlan()
	}
	tables := make([]domain.Table, 0, len(c.Tables))
	for _, t := range c.Tables {
		tables = append(tables, domain.Table{ID: t.ID, Capacity: t.Capacity})
	}
	return domain.NewFloorPlan(tables)
}

// BookingPolicy строит бизнес-политику из конфигурации
func (c *Config) BookingPolicy() domain.BookingPolicy {
	return domain.BookingPolicy{
		MaxGuests:            c.Booking.MaxGuests,
		CapacitySlack:        c.Booking.CapacitySlack,
		BookingHorizonMonths: c.Booking.BookingHorizonMonths,
	}
}
