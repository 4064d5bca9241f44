package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner is the slice of the owning user embedded into profile responses.
type Owner struct {
	ID     primitive.ObjectID `json:"_id"`
	Name   string             `json:"name"`
	Avatar string             `json:"avatar"`
}

type SocialLinks struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

type Experience struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        string             `bson:"from" json:"from"`
	To          string             `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	School       string             `bson:"school" json:"school"`
	Degree       string             `bson:"degree" json:"degree"`
	FieldOfStudy string             `bson:"fieldofstudy" json:"fieldofstudy"`
	From         string             `bson:"from" json:"from"`
	To           string             `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID         primitive.ObjectID `bson:"user" json:"-"`
	User           *Owner             `bson:"-" json:"user,omitempty"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Status         string             `bson:"status" json:"status"`
	Skills         []string           `bson:"skills" json:"skills"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Social         SocialLinks        `bson:"social" json:"social"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	CreatedAt      time.Time          `bson:"date" json:"date"`
}

// ProfilePatch is a sparse update: nil fields are left untouched by a
// merge, non-nil fields overwrite. Skills and Social always replace the
// stored value wholesale when set.
type ProfilePatch struct {
	Company  *string
	Website  *string
	Location *string
	Bio      *string
	Status   *string
	Skills   []string
	Social   *SocialLinks
}
