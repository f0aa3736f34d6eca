package classify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ticofinder/webtriage/internal/common"
	"github.com/ticofinder/webtriage/models"
	"github.com/ticofinder/webtriage/pkg/analytics"
	"github.com/ticofinder/webtriage/pkg/caching"
	"github.com/ticofinder/webtriage/pkg/contenttype"
	"github.com/ticofinder/webtriage/pkg/db"
	"github.com/ticofinder/webtriage/pkg/fetcher"
	"github.com/ticofinder/webtriage/pkg/language"
	"github.com/ticofinder/webtriage/pkg/llm"
	"github.com/ticofinder/webtriage/pkg/mapreduce"
	"github.com/ticofinder/webtriage/pkg/pagetype"
	"github.com/ticofinder/webtriage/pkg/registry"
)

const topKeywordCount = 25

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(path)
}

// newPipeline wires the classification collaborators from CLI flags. The
// cache is only attached when cacheDir is non-empty.
func newPipeline(logger *slog.Logger, reg *registry.Registry, llmCfg models.LLMConfig, useLLM bool, cacheDir string, cacheMaxAge time.Duration) (*pipeline, error) {
	var classifier llm.Classifier
	if useLLM {
		if llmCfg.APIKey == "" {
			return nil, fmt.Errorf("LLM fallback requested but no API key configured (set OPENAI_API_KEY)")
		}
		classifier = llm.NewOpenAIClassifier(llmCfg.APIKey, llmCfg.Model)
	}

	var cache *caching.Cache
	if cacheDir != "" {
		var err error
		cache, err = caching.NewCache(cacheDir, cacheMaxAge)
		if err != nil {
			return nil, err
		}
	}

	return &pipeline{
		registry:  reg,
		content:   contenttype.NewDetector(reg, classifier, logger),
		pages:     pagetype.NewDetector(classifier, logger),
		languages: language.NewDetector(),
		fetcher:   fetcher.NewFetcher(),
		cache:     cache,
		analytics: &analytics.Analytics{},
		useLLM:    useLLM,
		logger:    logger,
	}, nil
}

func openDatabase(c *cli.Context, logger *slog.Logger) *db.DB {
	var database *db.DB
	var err error
	if path := c.String("db"); path != "" {
		database, err = db.OpenAt(path)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	return database
}

// saveResult appends one classification outcome to the history database.
func saveResult(database *db.DB, logger *slog.Logger, r Result) {
	if r.Error != nil {
		return
	}

	urlID, err := database.InsertURL(r.URL)
	if err != nil {
		logger.Warn("failed to store URL", "url", r.URL, "error", err)
		return
	}

	_, err = database.RecordClassification(urlID, db.ClassificationRecord{
		ContentType:       string(r.Content.Category),
		ContentConfidence: r.Content.Confidence,
		ContentMethod:     r.Content.Method,
		PageType:          string(r.Page.PageType),
		PageConfidence:    r.Page.Confidence,
		PageMethod:        r.Page.Method,
		Indicators:        r.Page.Indicators,
		Language:          string(r.Language),
		CostUSD:           r.Page.Cost,
		ElapsedSeconds:    r.Page.ElapsedSeconds,
	})
	if err != nil {
		logger.Warn("failed to record classification", "url", r.URL, "error", err)
	}
}

// ClassifyAction classifies a single URL: content type first, then page
// type. HTML comes from --html-file, from the network with --fetch, or is
// omitted for a URL-only pass.
func ClassifyAction(c *cli.Context) error {
	logger := newLogger(c)

	if c.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URL provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  webtriage classify "https://www.viator.com/tours/d742-12345"`)
		fmt.Fprintln(os.Stderr, `  webtriage classify --fetch "https://example.com/page"      # download HTML first`)
		fmt.Fprintln(os.Stderr, `  webtriage classify --html-file page.html "https://..."    # classify saved HTML`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: webtriage classify --help")
		os.Exit(1)
	}
	rawURL := common.SanitizeURL(c.Args().First())

	reg, err := loadRegistry(c.String("registry"))
	if err != nil {
		logger.Error("failed to load category registry", "error", err)
		os.Exit(2)
	}

	override := models.Category(c.String("type"))
	if override != "" && !reg.Valid(override) {
		fmt.Fprintf(os.Stderr, "Error: unknown content type %q\n", override)
		fmt.Fprintln(os.Stderr, "Run 'webtriage types' to list valid types")
		os.Exit(1)
	}

	llmCfg := models.LLMConfig{
		APIKey: c.String("api-key"),
		Model:  c.String("model"),
	}
	if llmCfg.APIKey == "" {
		llmCfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	p, err := newPipeline(logger, reg, llmCfg, c.Bool("use-llm"), "", 0)
	if err != nil {
		logger.Error("failed to initialize pipeline", "error", err)
		os.Exit(2)
	}

	html := ""
	fromCache := false
	switch {
	case c.IsSet("html-file"):
		data, err := os.ReadFile(c.String("html-file"))
		if err != nil {
			logger.Error("failed to read HTML file", "error", err)
			os.Exit(2)
		}
		html = string(data)
	case c.Bool("fetch"):
		html, fromCache, err = p.fetchHTML(c.Context, rawURL)
		if err != nil {
			logger.Error("failed to fetch page", "url", rawURL, "error", err)
			os.Exit(2)
		}
	}

	result := p.classify(c.Context, rawURL, html, override)
	result.FromCache = fromCache

	if c.Bool("save") {
		database := openDatabase(c, logger)
		defer database.Close()
		saveResult(database, logger, result)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(buildOutput(result, reg)); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// BatchAction classifies many URLs concurrently. URLs come from --urls or
// from a YAML config file; fetched HTML is cached on disk between runs.
func BatchAction(c *cli.Context) error {
	logger := newLogger(c)
	startTime := time.Now()

	config := &models.BatchConfig{
		WorkerCount: c.Int("workers"),
		CacheDir:    c.String("cache-dir"),
		CacheMaxAge: c.String("max-age"),
	}

	if c.IsSet("config") {
		loaded, err := models.LoadBatchConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load batch config", "error", err)
			os.Exit(2)
		}
		config = loaded
		if c.IsSet("workers") {
			config.WorkerCount = c.Int("workers")
		}
	}
	if c.IsSet("urls") {
		config.URLs = strings.Split(c.String("urls"), ",")
	}
	if config.LLM.APIKey == "" {
		config.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Bool("use-llm") {
		config.LLM.Enabled = true
	}

	if len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  webtriage batch --urls "https://example.com,https://example.org"`)
		fmt.Fprintln(os.Stderr, `  webtriage batch --config batch.yaml`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: webtriage batch --help")
		os.Exit(1)
	}

	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(config.URLs)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d invalid URL(s):\n", len(invalidURLs))
		for _, u := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  %s\n", u)
		}
		os.Exit(1)
	}
	config.URLs = sanitizedURLs

	maxAge := 24 * time.Hour
	if config.CacheMaxAge != "" {
		var err error
		maxAge, err = time.ParseDuration(config.CacheMaxAge)
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	reg, err := loadRegistry(config.Registry)
	if err != nil {
		logger.Error("failed to load category registry", "error", err)
		os.Exit(2)
	}

	p, err := newPipeline(logger, reg, config.LLM, config.LLM.Enabled, config.CacheDir, maxAge)
	if err != nil {
		logger.Error("failed to initialize pipeline", "error", err)
		os.Exit(2)
	}

	results, wordCounts, runErr := runBatch(c.Context, logger, config.URLs, config.WorkerCount, p)

	var database *db.DB
	if c.Bool("save") {
		database = openDatabase(c, logger)
		defer database.Close()
	}

	finalOutput := &FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(results)),
	}
	stats := Stats{TotalURLs: len(results)}
	for _, result := range results {
		finalOutput.Results = append(finalOutput.Results, buildOutput(result, reg))
		if result.Error != nil {
			stats.Failed++
			continue
		}
		stats.Successful++
		stats.TotalCostUSD += result.Page.Cost
		if result.FromCache {
			stats.CacheHits++
		}
		if database != nil {
			saveResult(database, logger, result)
		}
	}
	stats.TotalTimeSeconds = time.Since(startTime).Seconds()
	stats.TopKeywords = mapreduce.TopKeywords(wordCounts, topKeywordCount)
	finalOutput.Stats = stats
	if runErr != nil {
		finalOutput.Status = "partial_failure"
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(finalOutput); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if runErr != nil {
		os.Exit(1)
	}
	return nil
}

// typeListing is one row of the types command output.
type typeListing struct {
	Type        string   `yaml:"type" json:"type"`
	Label       string   `yaml:"label" json:"label"`
	Icon        string   `yaml:"icon" json:"icon"`
	Description string   `yaml:"description" json:"description"`
	Domains     []string `yaml:"domains,omitempty" json:"domains,omitempty"`
	Keywords    int      `yaml:"keywords" json:"keywords"`
}

// TypesAction lists the configured content types and their detection
// vocabulary.
func TypesAction(c *cli.Context) error {
	logger := newLogger(c)

	reg, err := loadRegistry(c.String("registry"))
	if err != nil {
		logger.Error("failed to load category registry", "error", err)
		os.Exit(2)
	}

	listings := make([]typeListing, 0, len(reg.Profiles()))
	for _, profile := range reg.Profiles() {
		listing := typeListing{
			Type:        string(profile.Category),
			Label:       profile.Label,
			Icon:        profile.Icon,
			Description: profile.Description,
			Keywords:    len(profile.Keywords),
		}
		if c.Bool("verbose") {
			listing.Domains = profile.Domains
		}
		listings = append(listings, listing)
	}

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listings)
	}

	data, err := yaml.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to encode types: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// HistoryAction prints recent classification history from the database.
func HistoryAction(c *cli.Context) error {
	logger := newLogger(c)

	database := openDatabase(c, logger)
	defer database.Close()

	limit := c.Int("limit")
	var entries []db.HistoryEntry
	var err error
	if c.IsSet("url") {
		entries, err = database.HistoryForURL(common.SanitizeURL(c.String("url")), limit)
	} else {
		entries, err = database.ListHistory(limit)
	}
	if err != nil {
		logger.Error("failed to read history", "error", err)
		os.Exit(2)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return nil
}
