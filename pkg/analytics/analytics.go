// Package analytics does word-frequency analysis over extracted page text.
// The corpus mixes English and Spanish so both stopword lists apply at once.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// englishStopwords is a map of frequently occurring English words that
// should be ignored in frequency analysis. This list can be extended as
// needed.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "amount": {}, "an": {}, "and": {}, "another": {}, "any": {},
	"anyhow": {}, "anyone": {}, "anything": {}, "anyway": {}, "anywhere": {},
	"are": {}, "aren't": {}, "around": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {}, "becomes": {},
	"becoming": {}, "been": {}, "before": {}, "beforehand": {}, "behind": {},
	"being": {}, "below": {}, "beside": {}, "besides": {}, "between": {},
	"beyond": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {},

	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {}, "doing": {},
	"don't": {}, "done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "elsewhere": {}, "enough": {},
	"entirely": {}, "especially": {}, "etc": {}, "even": {}, "ever": {},
	"every": {}, "everyone": {}, "everything": {}, "everywhere": {},

	"few": {}, "for": {}, "former": {}, "formerly": {}, "from": {},
	"further": {},

	"had": {}, "hadn't": {}, "has": {}, "hasn't": {}, "have": {}, "haven't": {},
	"having": {}, "he": {}, "he'd": {}, "he'll": {}, "he's": {}, "hence": {},
	"her": {}, "here": {}, "hereafter": {}, "hereby": {}, "herein": {},
	"here's": {}, "hereupon": {}, "hers": {}, "herself": {}, "him": {},
	"himself": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "i'd": {}, "i'll": {}, "i'm": {}, "i've": {},
	"if": {}, "in": {}, "indeed": {}, "into": {}, "is": {}, "isn't": {},
	"it": {}, "it's": {}, "its": {}, "itself": {},

	"just": {},

	"keep": {},

	"last": {}, "latter": {}, "latterly": {}, "least": {}, "less": {},
	"let": {}, "let's": {}, "like": {}, "likely": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"meanwhile": {}, "might": {}, "mine": {}, "more": {}, "moreover": {},
	"most": {}, "mostly": {}, "much": {}, "must": {}, "mustn't": {},
	"my": {}, "myself": {},

	"neither": {}, "never": {}, "nevertheless": {}, "next": {}, "no": {},
	"nobody": {}, "none": {}, "noone": {}, "nor": {}, "not": {},
	"nothing": {}, "now": {}, "nowhere": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"otherwise": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"part": {}, "per": {}, "perhaps": {}, "please": {}, "put": {},

	"rather": {}, "re": {}, "same": {}, "see": {}, "seem": {}, "seemed": {},
	"seeming": {}, "seems": {}, "several": {}, "she": {}, "she'd": {},
	"she'll": {}, "she's": {}, "should": {}, "shouldn't": {}, "since": {},
	"so": {}, "some": {}, "somehow": {}, "someone": {}, "something": {},
	"sometime": {}, "sometimes": {}, "somewhere": {}, "still": {},
	"such": {},

	"take": {}, "than": {}, "that": {}, "that's": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"thence": {}, "there": {}, "thereafter": {}, "thereby": {},
	"therefore": {}, "therein": {}, "there's": {}, "thereupon": {},
	"these": {}, "they": {}, "they'd": {}, "they'll": {}, "they're": {},
	"they've": {}, "this": {}, "those": {}, "through": {}, "throughout": {},
	"thru": {}, "thus": {}, "to": {}, "together": {}, "too": {},
	"toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "wasn't": {}, "we": {}, "we'd": {}, "we'll": {},
	"we're": {}, "we've": {}, "well": {}, "were": {}, "weren't": {},
	"what": {}, "whatever": {}, "what's": {}, "when": {}, "whence": {},
	"whenever": {}, "where": {}, "whereafter": {}, "whereas": {},
	"whereby": {}, "wherein": {}, "where's": {}, "whereupon": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "whither": {},
	"who": {}, "who'd": {}, "whoever": {}, "who'll": {}, "who's": {},
	"whose": {}, "why": {}, "with": {}, "within": {}, "without": {},
	"won't": {}, "would": {}, "wouldn't": {},

	"yet": {}, "you": {}, "you'd": {}, "you'll": {}, "you're": {},
	"you've": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},

	"ain't": {}, "it'll": {}, "shan't": {}, "that'll": {}, "when's": {},

	// Common web/UI noise words
	"click": {}, "clickable": {}, "clicked": {}, "clicking": {},
	"button": {}, "link": {}, "menu": {},
	"redirected": {}, "redirect": {}, "redirecting": {},
	"page": {}, "pages": {}, "website": {}, "site": {},
	"home": {}, "homepage": {},
	"search": {}, "searching": {}, "searched": {},
	"loading": {}, "loaded": {}, "load": {}, "loads": {},
}

// spanishStopwords covers the Spanish half of the corpus. Listing sites in
// Costa Rica publish in both languages, often on the same page.
var spanishStopwords = map[string]struct{}{
	"al": {}, "algo": {}, "algunas": {}, "algunos": {}, "ante": {},
	"antes": {}, "aquel": {}, "aquella": {}, "aquellas": {}, "aquellos": {},
	"aquí": {}, "así": {}, "aún": {},

	"bajo": {}, "bien": {},

	"cada": {}, "como": {}, "cómo": {}, "con": {}, "contra": {},
	"cual": {}, "cuales": {}, "cualquier": {}, "cuando": {}, "cuándo": {},

	"de": {}, "del": {}, "desde": {}, "donde": {}, "dónde": {},
	"dos": {}, "durante": {},

	"el": {}, "él": {}, "ella": {}, "ellas": {}, "ellos": {},
	"en": {}, "entre": {}, "era": {}, "eran": {}, "es": {},
	"esa": {}, "esas": {}, "ese": {}, "eso": {}, "esos": {},
	"esta": {}, "está": {}, "están": {}, "estas": {}, "este": {},
	"esto": {}, "estos": {},

	"fue": {}, "fueron": {},

	"ha": {}, "hace": {}, "hacia": {}, "han": {}, "hasta": {},
	"hay": {},

	"la": {}, "las": {}, "le": {}, "les": {}, "lo": {}, "los": {},

	"más": {}, "me": {}, "mi": {}, "mis": {}, "mismo": {},
	"mucho": {}, "muchos": {}, "muy": {},

	"nada": {}, "ni": {}, "no": {}, "nos": {}, "nosotros": {},
	"nuestra": {}, "nuestras": {}, "nuestro": {}, "nuestros": {},

	"o": {}, "otra": {}, "otras": {}, "otro": {}, "otros": {},

	"para": {}, "pero": {}, "poco": {}, "por": {}, "porque": {},
	"puede": {}, "pueden": {},

	"que": {}, "qué": {}, "quien": {}, "quienes": {},

	"se": {}, "según": {}, "ser": {}, "si": {}, "sí": {},
	"sido": {}, "siempre": {}, "sin": {}, "sobre": {}, "solo": {},
	"sólo": {}, "son": {}, "su": {}, "sus": {},

	"tal": {}, "también": {}, "tan": {}, "tanto": {}, "te": {},
	"tiene": {}, "tienen": {}, "toda": {}, "todas": {}, "todo": {},
	"todos": {}, "tras": {}, "tu": {}, "tus": {},

	"un": {}, "una": {}, "unas": {}, "uno": {}, "unos": {},

	"va": {}, "vamos": {}, "van": {}, "vez": {},

	"y": {}, "ya": {}, "yo": {},

	// Spanish web/UI noise
	"página": {}, "páginas": {}, "sitio": {}, "inicio": {},
	"buscar": {}, "búsqueda": {}, "ver": {}, "información": {},
}

// IsStopword checks if a word is a common stopword in either language.
func IsStopword(word string) bool {
	lower := strings.ToLower(word)
	if _, exists := englishStopwords[lower]; exists {
		return true
	}
	_, exists := spanishStopwords[lower]
	return exists
}

// isWordRune keeps lowercase ASCII letters, digits, and the accented Latin
// letters Spanish uses. Everything else is trimmed from word edges.
func isWordRune(r rune) bool {
	if 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text)) // strings.Fields handles multiple spaces and newlines
	frequencies := make(map[string]int)

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !isWordRune(r)
		})

		if word == "" || IsStopword(word) {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
