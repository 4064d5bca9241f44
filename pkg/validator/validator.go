package validator

import (
	"net/mail"
	"strings"
)

// FieldError is one validation failure, serialized the way clients of
// this API expect them: {"msg": "...", "param": "..."}.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v *ValidationErrors) Add(param, msg string) {
	*v = append(*v, FieldError{Msg: msg, Param: param})
}

func ValidateRegister(name, email, password string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Please include a valid email")
	}

	if len(password) < 6 {
		errs.Add("password", "Please enter a password with 6 or more characters")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	var errs ValidationErrors

	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Please include a valid email")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateProfile(status, skills string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(status) == "" {
		errs.Add("status", "Status is required")
	}

	if strings.TrimSpace(skills) == "" {
		errs.Add("skills", "Skills is required")
	}

	return errs
}

func ValidateExperience(title, company, from string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}

	if strings.TrimSpace(company) == "" {
		errs.Add("company", "Company is required")
	}

	if strings.TrimSpace(from) == "" {
		errs.Add("from", "From date is required")
	}

	return errs
}

func ValidateEducation(school, degree, fieldOfStudy, from string) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(school) == "" {
		errs.Add("school", "School is required")
	}

	if strings.TrimSpace(degree) == "" {
		errs.Add("degree", "Degree is required")
	}

	if strings.TrimSpace(fieldOfStudy) == "" {
		errs.Add("fieldofstudy", "Field of study is required")
	}

	if strings.TrimSpace(from) == "" {
		errs.Add("from", "From date is required")
	}

	return errs
}
