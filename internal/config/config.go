package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	Redis         RedisConfig         `mapstructure:"redis"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Quiz          QuizConfig          `mapstructure:"quiz"`
	Parser        ParserConfig        `mapstructure:"parser"`
	FeedbackCache FeedbackCacheConfig `mapstructure:"feedback_cache"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"`
	// Output is the console sink: stdout (default), stderr or none.
	Output string `mapstructure:"output"`
	// File enables a rotating JSON log file next to the console output.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ProviderConfig describes one text-generation provider and its model priority list.
type ProviderConfig struct {
	ID        string   `mapstructure:"id"`
	Kind      string   `mapstructure:"kind"`
	APIKeyEnv string   `mapstructure:"api_key_env"`
	BaseURL   string   `mapstructure:"base_url"`
	Models    []string `mapstructure:"models"`

	// APIKey is resolved from the environment variable named by APIKeyEnv.
	APIKey string `mapstructure:"-"`
}

type LLMConfig struct {
	CallTimeout time.Duration    `mapstructure:"call_timeout"`
	ProbePrompt string           `mapstructure:"probe_prompt"`
	Providers   []ProviderConfig `mapstructure:"providers"`
}

type CategoryConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

type QuizConfig struct {
	QuestionCount       int              `mapstructure:"question_count"`
	MinQuestions        int              `mapstructure:"min_questions"`
	MaxQuestions        int              `mapstructure:"max_questions"`
	Concurrency         int              `mapstructure:"concurrency"`
	SlotTimeout         time.Duration    `mapstructure:"slot_timeout"`
	QuestionMaxTokens   int              `mapstructure:"question_max_tokens"`
	QuestionTemperature float64          `mapstructure:"question_temperature"`
	FeedbackMaxTokens   int              `mapstructure:"feedback_max_tokens"`
	FeedbackTemperature float64          `mapstructure:"feedback_temperature"`
	Seed                int64            `mapstructure:"seed"`
	MixedDescription    string           `mapstructure:"mixed_description"`
	Categories          []CategoryConfig `mapstructure:"categories"`
}

type ParserConfig struct {
	QuestionMarkers []string `mapstructure:"question_markers"`
	AnswerMarkers   []string `mapstructure:"answer_markers"`
	StrictAnswer    bool     `mapstructure:"strict_answer"`
}

type FeedbackCacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Credentials never live in the config file; each provider names the variable it reads.
	for i := range cfg.LLM.Providers {
		if env := cfg.LLM.Providers[i].APIKeyEnv; env != "" {
			cfg.LLM.Providers[i].APIKey = v.GetString(env)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if c.Quiz.MinQuestions <= 0 || c.Quiz.MaxQuestions < c.Quiz.MinQuestions {
		return fmt.Errorf("invalid quiz bounds: min=%d max=%d", c.Quiz.MinQuestions, c.Quiz.MaxQuestions)
	}
	if c.Quiz.QuestionCount < c.Quiz.MinQuestions || c.Quiz.QuestionCount > c.Quiz.MaxQuestions {
		return fmt.Errorf("quiz.question_count %d outside [%d, %d]", c.Quiz.QuestionCount, c.Quiz.MinQuestions, c.Quiz.MaxQuestions)
	}
	if len(c.Quiz.Categories) == 0 {
		return errors.New("quiz.categories must not be empty")
	}
	seen := make(map[string]struct{}, len(c.LLM.Providers))
	for _, p := range c.LLM.Providers {
		if p.ID == "" {
			return errors.New("llm provider without id")
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate llm provider id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("logger.env", "ENV")
	_ = v.BindEnv("redis.address", "REDIS_ADDRESS")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("quiz.seed", "QUIZ_SEED")
	_ = v.BindEnv("feedback_cache.enabled", "FEEDBACK_CACHE_ENABLED")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "60s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)

	v.SetDefault("llm.call_timeout", "20s")
	v.SetDefault("llm.probe_prompt", "What is the capital of France?")
	v.SetDefault("llm.providers", DefaultProviders())

	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.min_questions", 5)
	v.SetDefault("quiz.max_questions", 20)
	v.SetDefault("quiz.concurrency", 10)
	v.SetDefault("quiz.slot_timeout", "45s")
	v.SetDefault("quiz.question_max_tokens", 200)
	v.SetDefault("quiz.question_temperature", 0.8)
	v.SetDefault("quiz.feedback_max_tokens", 150)
	v.SetDefault("quiz.feedback_temperature", 0.7)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.mixed_description", "Una mezcla de todas las categorías disponibles")
	v.SetDefault("quiz.categories", DefaultCategories())

	v.SetDefault("parser.question_markers", []string{"pregunta:", "question:"})
	v.SetDefault("parser.answer_markers", []string{"respuesta correcta:", "correct answer:"})
	v.SetDefault("parser.strict_answer", false)

	v.SetDefault("feedback_cache.enabled", false)
	v.SetDefault("feedback_cache.ttl", "10m")

	v.SetDefault("rate_limit.max_requests", 30)
	v.SetDefault("rate_limit.window", "1m")
}

// DefaultProviders is the Gemini then Hugging Face chain with their model priority lists.
func DefaultProviders() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":          "gemini",
			"kind":        "googleai",
			"api_key_env": "GOOGLE_GEMINI_API_KEY",
			"models": []string{
				"gemini-1.5-flash",
				"gemini-1.5-pro",
				"gemini-pro",
				"models/gemini-1.5-flash",
				"models/gemini-pro",
			},
		},
		{
			"id":          "huggingface",
			"kind":        "huggingface",
			"api_key_env": "HUGGING_FACE_API_KEY",
			"models": []string{
				"google/flan-t5-small",
				"microsoft/DialoGPT-medium",
				"facebook/blenderbot-400M-distill",
				"microsoft/DialoGPT-small",
				"distilgpt2",
			},
		},
	}
}

func DefaultCategories() []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "programación", "description": "Preguntas sobre lenguajes de programación, frameworks y desarrollo"},
		{"name": "historia", "description": "Eventos históricos, personajes y fechas importantes"},
		{"name": "ciencia", "description": "Física, química, biología y ciencias naturales"},
		{"name": "geografía", "description": "Países, capitales, ríos, montañas y geografía mundial"},
		{"name": "arte", "description": "Pintura, escultura, artistas famosos y movimientos artísticos"},
		{"name": "deportes", "description": "Deportes populares, atletas famosos y competiciones"},
		{"name": "tecnología", "description": "Innovaciones tecnológicas, empresas y gadgets"},
		{"name": "música", "description": "Artistas, géneros musicales e instrumentos"},
		{"name": "cine", "description": "Películas, directores, actores y historia del cine"},
		{"name": "literatura", "description": "Libros, autores y movimientos literarios"},
	}
}
