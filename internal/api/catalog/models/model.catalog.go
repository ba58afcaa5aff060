// Package models - Các model thuộc domain catalog (cocktails, garnishes, humour_lines).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cocktail là công thức cocktail trong catalog công khai (cocktails).
type Cocktail struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Ingredients []string             `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	GarnishIDs  []primitive.ObjectID `json:"garnishIds,omitempty" bson:"garnishIds,omitempty"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Garnish là đồ trang trí ly (garnishes).
type Garnish struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// HumourLine là một câu thoại hài hiển thị ngẫu nhiên trong app (humour_lines).
type HumourLine struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Text      string             `json:"text" bson:"text"`
	CreatedBy string             `json:"createdBy" bson:"createdBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
