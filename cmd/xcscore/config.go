package main

import(
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/skypies/xcscore/optimizer"
	"github.com/skypies/xcscore/report"
)

// Config is built up from defaults, then an optional config file, then XCSCORE_*
// environment variables, then whichever flags were given explicitly.
type Config struct {
	ConfigFile string `mapstructure:"config"`
	Waypoints  string `mapstructure:"waypoints"`
	Format     string `mapstructure:"format"`
	Report     string `mapstructure:"report"`
	Pilot      string `mapstructure:"pilot"`
	MinFixes   int    `mapstructure:"min_fixes"`
	MaxFixes   int    `mapstructure:"max_fixes"`
	Start      int    `mapstructure:"start"`
	End        int    `mapstructure:"end"`
	From       string `mapstructure:"from"`
	To         string `mapstructure:"to"`
	Optimizer  string `mapstructure:"optimizer"`
	CacheSize  int    `mapstructure:"cache_size"`
	LogLevel   string `mapstructure:"log_level"`
	LogDir     string `mapstructure:"log_dir"`
}

var formats = []string{"text", "kml", "geojson", "csv"}

func defineFlags(fs *flag.FlagSet) {
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("waypoints", "3", "comma separated task sizes to score, e.g. 3,5")
	fs.String("format", "text", "output format: "+strings.Join(formats, "|"))
	fs.String("report", "", "run the named report over all files; -report=help lists them")
	fs.String("pilot", "", "reports only: skip flights by other pilots")
	fs.Int("min_fixes", 0, "reports only: skip flights with fewer fixes")
	fs.Int("max_fixes", 0, "resample flights with more fixes than this; 0 for no limit")
	fs.Int("start", 0, "first fix of the search window")
	fs.Int("end", 0, "end of the search window (exclusive); 0 for the whole flight")
	fs.String("from", "", "only score fixes logged at or after this time, HH:MM:SS UTC")
	fs.String("to", "", "only score fixes logged at or before this time, HH:MM:SS UTC")
	fs.String("optimizer", optimizer.DefaultOptimizer, strings.Join(optimizer.Names(), "|"))
	fs.Int("cache_size", 0, "bruteforce distance cache entries; 0 for the default")
	fs.String("log_level", "info", "debug|info|warn|error")
	fs.String("log_dir", "", "write rotated JSON logs here, instead of text to stderr")
}

func loadConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	v := viper.New()
	fs.VisitAll(func(f *flag.Flag) { v.SetDefault(f.Name, f.DefValue) })

	v.SetEnvPrefix("XCSCORE")
	v.AutomaticEnv()

	file := v.GetString("config")
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		file = f.Value.String()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", file, err)
		}
	}

	fs.Visit(func(f *flag.Flag) { v.Set(f.Name, f.Value.String()) })

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c Config)validate() error {
	if _,err := report.ParseWaypoints(c.Waypoints); err != nil {
		return err
	}
	if _,exists := optimizer.Optimizers[c.Optimizer]; !exists {
		return fmt.Errorf("optimizer '%s' not one of %v", c.Optimizer, optimizer.Names())
	}
	if _,_,_,err := c.TimeRange(); err != nil {
		return err
	}
	for _,f := range formats {
		if c.Format == f { return nil }
	}
	return fmt.Errorf("format '%s' not one of %v", c.Format, formats)
}

func (c Config)ReportOptions() report.Options {
	waypoints,_ := report.ParseWaypoints(c.Waypoints)
	return report.Options{
		Name: c.Report,
		Waypoints: waypoints,
		Pilot: c.Pilot,
		MinFixes: c.MinFixes,
		MaxFixes: c.MaxFixes,
		Optimizer: c.Optimizer,
		PairCacheSize: c.CacheSize,
	}
}

// TimeRange turns -from and -to into seconds since midnight. A range that ends
// before it starts runs past midnight. ok is false when neither is set.
func (c Config)TimeRange() (s, e int, ok bool, err error) {
	if c.From == "" && c.To == "" {
		return 0, 0, false, nil
	}
	s, e = 0, 2*86400
	if c.From != "" {
		if s,err = secondsOfDay(c.From); err != nil { return 0, 0, false, err }
	}
	if c.To != "" {
		if e,err = secondsOfDay(c.To); err != nil { return 0, 0, false, err }
		if e < s { e += 86400 }
	}
	return s, e, true, nil
}

func secondsOfDay(str string) (int, error) {
	t,err := time.Parse("15:04:05", str)
	if err != nil {
		return 0, fmt.Errorf("time '%s': want HH:MM:SS", str)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}
