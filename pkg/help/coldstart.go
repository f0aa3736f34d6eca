package help

const ColdstartYAML = `# webtriage Quick Start

what_it_does: |
  Two-stage classification of travel-domain web pages.
  Stage 1 (content type): real_estate, tour, restaurant, local_tips, transportation.
  Stage 2 (page type): specific (one item) vs general (listing/guide).

commands:
  classify_url_only: |
    webtriage classify "https://www.viator.com/tours/d742-12345"

  classify_with_fetch: |
    webtriage classify --fetch "https://example.com/page"

  classify_saved_html: |
    webtriage classify --html-file page.html "https://example.com/page"

  classify_with_override: |
    webtriage classify --type restaurant "https://example.com/menu"

  classify_with_llm_fallback: |
    OPENAI_API_KEY=sk-... webtriage classify --fetch --use-llm "https://example.com/page"

  batch: |
    webtriage batch --urls "https://example.com,https://example.org" --workers 8

  batch_from_config: |
    webtriage batch --config batch.yaml --save

  list_types: |
    webtriage types
    webtriage types --verbose --json

  history: |
    webtriage history --limit 20
    webtriage history --url "https://example.com/page"

config_file: |
  # batch.yaml
  urls:
    - https://www.viator.com/tours/d742-12345
    - https://encuentra24.com/costa-rica-en/listing-98765
  worker_count: 8
  cache_dir: .webtriage-cache
  cache_max_age: 24h
  llm:
    enabled: false
    model: gpt-4o-mini

confidence_scale:
  - "1.0 reserved for explicit --type override"
  - "0.95 ceiling for every automatic method"
  - "below 0.80 combined page-type confidence escalates to the LLM (when enabled)"

methods:
  content_type: [user_override, domain, keywords_high_confidence, llm, keywords_medium_confidence, default_fallback]
  page_type: [url_pattern, url_pattern_only, url_html_combined, url_html_openai_agreed, url_html_openai_override]

error_behavior:
  - "Malformed URLs: fail fast before fetching"
  - "LLM failures: fall back to heuristics, never abort"
  - "Exit codes: 0=success, 1=partial failure, 2=complete failure"
`
