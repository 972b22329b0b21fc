package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Blog publication states
const (
	BlogPublished   = "published"
	BlogUnpublished = "unPublished"
)

// Blog post written by an admin
type Blog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`   // Author name
	Email  string             `bson:"email,omitempty" json:"email,omitempty"` // Author email
	Title  string             `bson:"title,omitempty" json:"title,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Text   string             `bson:"text,omitempty" json:"text,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}

// CreateBlogRequest is the allow-listed body of POST /users/add-blog
type CreateBlogRequest struct {
	Name  string `json:"name"`
	Title string `json:"title" binding:"required"`
	Image string `json:"image"`
	Text  string `json:"text" binding:"required"`
}

// ToBlog builds an unpublished post authored by email
func (r CreateBlogRequest) ToBlog(email string) Blog {
	return Blog{
		Name:   r.Name,
		Email:  email,
		Title:  r.Title,
		Image:  r.Image,
		Text:   r.Text,
		Status: BlogUnpublished,
	}
}

// BlogPatch is the allow-listed body of PATCH /users/add-blog/:id
type BlogPatch struct {
	Name  *string `json:"name" bson:"name,omitempty"`
	Email *string `json:"email" bson:"email,omitempty" binding:"omitempty,email"`
	Title *string `json:"title" bson:"title,omitempty"`
	Image *string `json:"image" bson:"image,omitempty"`
	Text  *string `json:"text" bson:"text,omitempty"`
}
