package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PairingTable holds the static food-pairing data the compatibility
// scorer runs against. Keys and values are normalized to lower case at
// construction and the table is never mutated afterwards.
type PairingTable struct {
	pairings   map[string][]string
	categories map[string][]string
}

func NewPairingTable(pairings, categories map[string][]string) PairingTable {
	return PairingTable{
		pairings:   normaliseTable(pairings),
		categories: normaliseTable(categories),
	}
}

// Companions returns the foods listed as pairing well with the given
// food name. Unknown foods return nil.
func (t PairingTable) Companions(food string) []string {
	return t.pairings[normaliseFood(food)]
}

// SameCategory reports whether both foods appear in one of the named
// category lists.
func (t PairingTable) SameCategory(foodA, foodB string) bool {
	a, b := normaliseFood(foodA), normaliseFood(foodB)
	for _, foods := range t.categories {
		if containsFood(foods, a) && containsFood(foods, b) {
			return true
		}
	}
	return false
}

type pairingFile struct {
	Pairings   map[string][]string `yaml:"pairings"`
	Categories map[string][]string `yaml:"categories"`
}

// LoadPairingTable reads a pairing table from a YAML file, e.g. the one
// under data/. Used to override the built-in table without a rebuild.
func LoadPairingTable(path string) (PairingTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PairingTable{}, fmt.Errorf("read pairing table: %w", err)
	}
	var f pairingFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return PairingTable{}, fmt.Errorf("parse pairing table: %w", err)
	}
	if len(f.Pairings) == 0 {
		return PairingTable{}, fmt.Errorf("pairing table %s has no pairings", path)
	}
	return NewPairingTable(f.Pairings, f.Categories), nil
}

func normaliseFood(food string) string {
	return strings.ToLower(strings.TrimSpace(food))
}

func normaliseTable(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, vs := range in {
		list := make([]string, 0, len(vs))
		for _, v := range vs {
			list = append(list, normaliseFood(v))
		}
		out[normaliseFood(k)] = list
	}
	return out
}

func containsFood(list []string, food string) bool {
	for _, f := range list {
		if f == food {
			return true
		}
	}
	return false
}

// DefaultPairingTable is the table the app ships with.
func DefaultPairingTable() PairingTable {
	return NewPairingTable(defaultPairings, defaultCategories)
}

var defaultPairings = map[string][]string{
	// Pasta & Italian
	"pasta":     {"garlic bread", "salad", "meatballs", "wine", "parmesan"},
	"spaghetti": {"garlic bread", "meatballs", "salad", "wine"},
	"lasagna":   {"garlic bread", "salad", "wine", "dessert"},
	"pizza":     {"salad", "wings", "beer", "dessert"},

	// Asian
	"fried rice": {"egg", "vegetables", "soy sauce", "soup"},
	"curry":      {"rice", "naan", "yogurt", "pickles"},
	"sushi":      {"miso soup", "sake", "wasabi", "ginger"},
	"ramen":      {"egg", "vegetables", "tea", "dumplings"},

	// American
	"burger":   {"fries", "milkshake", "onion rings", "salad"},
	"sandwich": {"chips", "pickles", "soup", "salad"},
	"steak":    {"potatoes", "wine", "vegetables", "bread"},

	// Breakfast
	"pancakes": {"coffee", "fruit", "syrup", "bacon"},
	"waffles":  {"coffee", "fruit", "syrup", "eggs"},
	"toast":    {"coffee", "jam", "butter", "eggs"},
	"cereal":   {"milk", "fruit", "coffee", "yogurt"},

	// Mexican
	"tacos":   {"rice", "beans", "salsa", "guacamole"},
	"burrito": {"salsa", "guacamole", "chips", "beer"},
	"nachos":  {"salsa", "guacamole", "beer", "jalapeños"},

	// Desserts
	"cake":    {"coffee", "ice cream", "fruit", "tea"},
	"cookies": {"milk", "coffee", "tea", "fruit"},
	"pie":     {"ice cream", "coffee", "tea", "whipped cream"},

	// Soups
	"soup":  {"bread", "salad", "crackers", "wine"},
	"chili": {"cornbread", "cheese", "sour cream", "beer"},

	// Salads
	"salad": {"bread", "soup", "wine", "protein"},

	// Generic categories
	"vegetables": {"rice", "bread", "protein", "sauce"},
	"rice":       {"curry", "vegetables", "protein", "sauce"},
	"bread":      {"soup", "butter", "jam", "cheese"},
	"chicken":    {"rice", "vegetables", "salad", "sauce"},
	"fish":       {"rice", "vegetables", "lemon", "wine"},
	"beef":       {"potatoes", "vegetables", "wine", "bread"},
}

var defaultCategories = map[string][]string{
	"pasta":     {"spaghetti", "lasagna", "macaroni"},
	"asian":     {"fried rice", "curry", "sushi", "ramen"},
	"american":  {"burger", "sandwich", "steak"},
	"mexican":   {"tacos", "burrito", "nachos"},
	"breakfast": {"pancakes", "waffles", "toast", "cereal"},
}
