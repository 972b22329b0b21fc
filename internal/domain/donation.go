package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// DonationPending is the status given to new donation requests
const DonationPending = "pending"

// Donation is a blood donation request
type Donation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DonorEmail    string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"` // Owner of the request
	RecipientName string             `bson:"recipientName,omitempty" json:"recipientName,omitempty"`
	District      string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila       string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	HospitalName  string             `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
	Time          string             `bson:"time,omitempty" json:"time,omitempty"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"` // Free text
}

// CreateDonationRequest is the allow-listed body of POST /donations
type CreateDonationRequest struct {
	RecipientName string `json:"recipientName" binding:"required"`
	District      string `json:"district" binding:"required"`
	Upazila       string `json:"upazila" binding:"required"`
	HospitalName  string `json:"hospitalName" binding:"required"`
	Address       string `json:"address"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Message       string `json:"message"`
}

// ToDonation builds the stored request owned by donorEmail
func (r CreateDonationRequest) ToDonation(donorEmail string) Donation {
	return Donation{
		DonorEmail:    donorEmail,
		RecipientName: r.RecipientName,
		District:      r.District,
		Upazila:       r.Upazila,
		HospitalName:  r.HospitalName,
		Address:       r.Address,
		Date:          r.Date,
		Time:          r.Time,
		Message:       r.Message,
		Status:        DonationPending,
	}
}

// DonationPatch is the allow-listed body of PATCH /donations/:id
type DonationPatch struct {
	RecipientName *string `json:"recipientName" bson:"recipientName,omitempty"`
	District      *string `json:"district" bson:"district,omitempty"`
	Upazila       *string `json:"upazila" bson:"upazila,omitempty"`
	HospitalName  *string `json:"hospitalName" bson:"hospitalName,omitempty"`
	Address       *string `json:"address" bson:"address,omitempty"`
	Date          *string `json:"date" bson:"date,omitempty"`
	Time          *string `json:"time" bson:"time,omitempty"`
	Message       *string `json:"message" bson:"message,omitempty"`
}
