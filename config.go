package hamilton

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	catalogMu sync.Mutex
	catalog   map[string]CelestialObject
)

// LoadCelestialCatalog reads additional celestial bodies from the conf.toml
// file in the directory named by the HAMILTON_CONFIG environment variable.
// Each body is a [bodies.<name>] table with gm (m³/s²), radius, semimajoraxis,
// soi (m) and optional j2, j3, j4 keys. Loaded bodies take precedence in
// CelestialObjectFromString and replace any previously loaded catalog.
func LoadCelestialCatalog() error {
	confPath := os.Getenv("HAMILTON_CONFIG")
	if confPath == "" {
		return errors.New("environment variable `HAMILTON_CONFIG` is missing or empty")
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read %s/conf.toml: %s", confPath, err)
	}

	bodies := v.GetStringMap("bodies")
	loaded := make(map[string]CelestialObject, len(bodies))
	for name := range bodies {
		sub := v.Sub("bodies." + name)
		if sub == nil {
			return fmt.Errorf("body '%s' is not a table", name)
		}
		body := CelestialObject{
			Name:   name,
			Radius: sub.GetFloat64("radius"),
			a:      sub.GetFloat64("semimajoraxis"),
			μ:      sub.GetFloat64("gm"),
			SOI:    sub.GetFloat64("soi"),
			J2:     sub.GetFloat64("j2"),
			J3:     sub.GetFloat64("j3"),
			J4:     sub.GetFloat64("j4"),
		}
		if body.μ <= 0 {
			return fmt.Errorf("body '%s' has no gravitational parameter", name)
		}
		loaded[strings.ToLower(name)] = body
	}

	catalogMu.Lock()
	catalog = loaded
	catalogMu.Unlock()
	return nil
}

func catalogBody(name string) (CelestialObject, bool) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	body, found := catalog[strings.ToLower(name)]
	return body, found
}
