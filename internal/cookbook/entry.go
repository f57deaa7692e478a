// Package cookbook defines the registry data model: named entries that are
// either atomic ingredients with a cook time or recipes composed of other
// entries.
package cookbook

import "encoding/json"

// Kind discriminates the Entry variants.
type Kind string

const (
	KindIngredient Kind = "ingredient"
	KindRecipe     Kind = "recipe"
)

// Valid reports whether k is one of the known entry kinds.
func (k Kind) Valid() bool {
	return k == KindIngredient || k == KindRecipe
}

// RequiredItem references another entry by name together with the quantity
// consumed by the parent recipe. The referenced entry is resolved lazily.
type RequiredItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// Entry is a single registry record. CookTime is only meaningful for
// ingredients and RequiredItems only for recipes.
type Entry struct {
	Name          string
	Kind          Kind
	CookTime      float64
	RequiredItems []RequiredItem
}

// NewIngredient builds an ingredient entry.
func NewIngredient(name string, cookTime float64) Entry {
	return Entry{Name: name, Kind: KindIngredient, CookTime: cookTime}
}

// NewRecipe builds a recipe entry. The items slice is copied.
func NewRecipe(name string, items ...RequiredItem) Entry {
	cp := make([]RequiredItem, len(items))
	copy(cp, items)
	return Entry{Name: name, Kind: KindRecipe, RequiredItems: cp}
}

func (e Entry) IsRecipe() bool     { return e.Kind == KindRecipe }
func (e Entry) IsIngredient() bool { return e.Kind == KindIngredient }

type ingredientJSON struct {
	Name     string  `json:"name"`
	Kind     Kind    `json:"type"`
	CookTime float64 `json:"cookTime"`
}

type recipeJSON struct {
	Name          string         `json:"name"`
	Kind          Kind           `json:"type"`
	RequiredItems []RequiredItem `json:"requiredItems"`
}

// MarshalJSON renders only the fields that belong to the entry's kind.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IsRecipe() {
		items := e.RequiredItems
		if items == nil {
			items = []RequiredItem{}
		}
		return json.Marshal(recipeJSON{Name: e.Name, Kind: e.Kind, RequiredItems: items})
	}
	return json.Marshal(ingredientJSON{Name: e.Name, Kind: e.Kind, CookTime: e.CookTime})
}
