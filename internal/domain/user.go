package domain

import "go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type

// Role and status values stored on users
const (
	RoleAdmin    = "admin"  // Only role with elevated rights
	StatusActive = "active" // Default status for new users
	StatusBlock  = "block"  // Blocked by an admin
)

// User Model
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`                 // Document identifier
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`     // Display name
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`   // Login identity
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`     // Unset or admin
	Status     string             `bson:"status,omitempty" json:"status,omitempty"` // Unset, active or block
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// CreateUserRequest is the allow-listed body of POST /users
type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" binding:"required,email"` // Email must be provided
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Avatar     string `json:"avatar"`
}

// ToUser builds the document to insert; role is never taken from the body
func (r CreateUserRequest) ToUser() User {
	return User{
		Name:       r.Name,
		Email:      r.Email,
		Status:     StatusActive,
		BloodGroup: r.BloodGroup,
		District:   r.District,
		Upazila:    r.Upazila,
		Avatar:     r.Avatar,
	}
}

// UserPatch is the allow-listed body of PATCH /user/:id. Nil fields are left untouched.
type UserPatch struct {
	Name       *string `json:"name" bson:"name,omitempty"`
	Email      *string `json:"email" bson:"email,omitempty" binding:"omitempty,email"`
	BloodGroup *string `json:"bloodGroup" bson:"bloodGroup,omitempty"`
	District   *string `json:"district" bson:"district,omitempty"`
	Upazila    *string `json:"upazila" bson:"upazila,omitempty"`
	Avatar     *string `json:"avatar" bson:"avatar,omitempty"`
}

// AdminCheck is the body of GET /users/admin/:email
type AdminCheck struct {
	Admin bool `json:"admin"`
}
