package config

// DefaultPlatformDocURL documents the standard library of the runtime
// platform. Every generated cross-reference ultimately depends on this one
// mapping.
const DefaultPlatformDocURL = "https://docs.oracle.com/javase/8/docs/api/"

// defaultExternalLibraries maps precompiled third-party libraries to their
// externally hosted API docs. Overridable per entry from the config file.
var defaultExternalLibraries = map[string]string{
	"slf4j-api": "https://www.slf4j.org/api/",
	"joda-time": "https://www.joda.org/joda-time/apidocs/",
	"guava":     "https://guava.dev/releases/snapshot/api/docs/",
}

// defaultSourceLibraries maps libraries built from source in the same
// ecosystem to their published API docs.
var defaultSourceLibraries = map[string]string{
	"config":     "https://lightbend.github.io/config/latest/api/",
	"akka-actor": "https://doc.akka.io/api/akka/current/",
}

// applyDefaults fills unset values after unmarshal. Mapping tables merge:
// config entries overwrite defaults of the same name, defaults for names the
// config does not mention are kept.
func (c *Config) applyDefaults() {
	if c.Platform.DocURL == "" {
		c.Platform.DocURL = DefaultPlatformDocURL
	}
	if len(c.Classpath.Dirs) == 0 {
		c.Classpath.Dirs = []string{"lib"}
	}
	if len(c.Classpath.Extensions) == 0 {
		c.Classpath.Extensions = []string{".jar"}
	}
	c.Libraries.External = mergeTables(defaultExternalLibraries, c.Libraries.External)
	c.Libraries.Source = mergeTables(defaultSourceLibraries, c.Libraries.Source)
	if len(c.Rewrite.Extensions) == 0 {
		c.Rewrite.Extensions = []string{".html"}
	}
	if c.Rewrite.PageExtension == "" {
		c.Rewrite.PageExtension = ".html"
	}
	if c.State.Path == "" {
		c.State.Path = "./doclink.db"
	}
	if c.Daemon.Listen == "" {
		c.Daemon.Listen = ":8745"
	}
	if c.Events.Subject == "" {
		c.Events.Subject = "doclink.runs"
	}
}

func mergeTables(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for name, url := range defaults {
		merged[name] = url
	}
	for name, url := range overrides {
		merged[name] = url
	}
	return merged
}
