package domain

import "time"

// ProjectFile records the metadata of an uploaded file. The bytes themselves
// live in external object storage; FileURL points at them.
type ProjectFile struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ProjectID   string    `json:"project_id" bson:"project_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	FileURL     string    `json:"file_url" bson:"file_url"`
	FileType    string    `json:"file_type" bson:"file_type"`
	FileSize    int64     `json:"file_size" bson:"file_size"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
