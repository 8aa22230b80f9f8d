package review

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrNotFound = errors.New("review not found")
	// ErrDuplicate is returned when the author already reviewed the book.
	ErrDuplicate = errors.New("review already exists")
)

// Author is the public view of the user who wrote a review.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Review struct {
	ID        string    `json:"id"`
	User      Author    `json:"user"`
	BookPK    string    `json:"-"`
	Book      int64     `json:"book"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserID is the id of the review's author.
func (r Review) UserID() string {
	return r.User.ID
}

// Input is the body accepted when creating or updating a review.
type Input struct {
	Rating  *Rating `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"required,min=5,max=500"`
}

// Rating is a star score. It decodes from any integral JSON number (4, 4.0,
// 4e0) or a quoted one ("5"); range checks are left to validation.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return &json.UnmarshalTypeError{Value: "rating " + string(data), Type: reflect.TypeOf(*r)}
	}
	*r = Rating(f)
	return nil
}
