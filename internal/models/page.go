package models

import "time"

const (
	BlockTypeText  = "text"
	BlockTypeImage = "image"
)

func IsValidBlockType(blockType string) bool {
	return blockType == BlockTypeText || blockType == BlockTypeImage
}

// Block is a single content unit of a page. Order is caller-supplied and
// stored as-is; nothing enforces uniqueness or contiguity.
type Block struct {
	Order   int     `json:"order"`
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
}

type Page struct {
	ID         string    `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Title      string    `json:"title"`
	Blocks     []Block   `json:"blocks"`
	IsDeleted  bool      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
