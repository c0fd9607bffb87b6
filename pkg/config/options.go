package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptBlobStore selects the blob storage backend.
func OptBlobStore(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Blob.Store", s) {
			c.Blob.Store = s
		}
	}
}

// OptBlobDir sets the root directory for the filesystem blob store.
func OptBlobDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Blob Dir", s) {
			c.Blob.Dir = s
		}
	}
}

// OptBlobURL sets the base URL for the HTTP blob store.
func OptBlobURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Blob URL", s) {
			c.Blob.URL = s
		}
	}
}

// OptBlobToken sets the authentication token for the HTTP blob store.
func OptBlobToken(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Blob.Token = s
	}
}

// OptSearchURL sets the base URL of the search cluster.
func OptSearchURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Search URL", s) {
			c.Search.URL = s
		}
	}
}

// OptSearchIndex sets the default search index name.
func OptSearchIndex(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Search Index", s) {
			c.Search.Index = s
		}
	}
}

// OptSystemUserID sets the acting system user identity.
func OptSystemUserID(i int) Option {
	return func(c *Config) {
		if isValidInt("System User ID", i) {
			c.SystemUserID = i
		}
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the logging format.
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets the logging destination.
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log paths.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}
