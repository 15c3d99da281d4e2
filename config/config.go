// config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/rohanverma/dashgate/model"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Dashboard     DashboardConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// DashboardConfiguration stores the declared dashboard templates and the
// identifier of the template used to bootstrap a first dashboard.
type DashboardConfiguration struct {
	DefaultTemplate string
	Templates       []model.Template
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.maxPoolSize", 50)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("dashboard.defaultTemplate", "dashboard-default")
	viper.SetDefault("dashboard.templates", []map[string]interface{}{
		{
			"identifier": "dashboard-default",
			"label":      "Default dashboard",
			"widgets":    []string{"welcome", "dashboard-count", "rss-news"},
		},
	})
	viper.SetDefault("widgets.rss.title", "News")
	viper.SetDefault("widgets.rss.feedURL", "https://news.ycombinator.com/rss")
	viper.SetDefault("widgets.rss.limit", 5)
	viper.SetDefault("auth.jwtSecret", "")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// Templates returns the dashboard templates declared in the configuration
// file, keyed by template identifier.
func Templates() map[string]model.Template {
	var templates []model.Template
	if err := viper.UnmarshalKey("dashboard.templates", &templates); err != nil {
		log.Printf("Failed to unmarshal dashboard templates: %v", err)
		return nil
	}
	result := make(map[string]model.Template, len(templates))
	for _, template := range templates {
		result[template.Identifier] = template
	}
	return result
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 retrieves a float64 value from the configuration
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
