// Package validation проверяет бронирования по бизнес-правилам.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/BookMe-Service/internal/apperror"
	"github.com/m04kA/BookMe-Service/internal/domain"
)

// EmailPattern допустимый формат адреса: local@domain.tld, TLD из 2+ букв
const EmailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

// Имена полей в нарушениях совпадают с JSON-именами запроса
const (
	FieldUserEmail       = "userEmail"
	FieldStartTime       = "startTime"
	FieldDurationMinutes = "durationInMinutes"
	FieldComments        = "comments"
	FieldPageNo          = "pageNo"
	FieldPageSize        = "pageSize"
	FieldDirection       = "direction"
	FieldOrderBy         = "orderBy"
)

const (
	MsgEmailRequired     = "email required"
	MsgInvalidEmail      = "invalid email format"
	MsgStartTimeRequired = "start time required"
	MsgDurationPositive  = "duration must be positive"
)

const (
	tagBookingEmail = "booking_email"
	tagSortField    = "sort_field"
)

var emailRegexp = regexp.MustCompile(EmailPattern)

// bookingFields правила уровня полей для BookingRequest
type bookingFields struct {
	UserEmail       string     `validate:"required,booking_email"`
	StartTime       *time.Time `validate:"required"`
	DurationMinutes int        `validate:"gt=0"`
	Comments        *string    `validate:"omitempty,max=500"`
}

// emailFields правила для уже сохраненного бронирования
type emailFields struct {
	UserEmail string `validate:"required,booking_email"`
}

// pageFields правила для параметров листинга
type pageFields struct {
	PageNo    int    `validate:"gte=0"`
	PageSize  int    `validate:"gt=0"`
	Direction string `validate:"required,oneof=ASC DESC"`
	OrderBy   string `validate:"required,sort_field"`
}

// Engine проверяет бронирования и параметры листинга
type Engine struct {
	validate     *validator.Validate
	timeProvider TimeProvider
	maxPageSize  int
}

// NewEngine создает движок валидации.
// maxPageSize <= 0 означает domain.MaxPageSize.
func NewEngine(timeProvider TimeProvider, maxPageSize int) *Engine {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if maxPageSize <= 0 {
		maxPageSize = domain.MaxPageSize
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, tagBookingEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	mustRegister(v, tagSortField, func(fl validator.FieldLevel) bool {
		_, ok := domain.SortField(fl.Field().String()).Column()
		return ok
	})

	return &Engine{
		validate:     v,
		timeProvider: timeProvider,
		maxPageSize:  maxPageSize,
	}
}

// mustRegister регистрирует тег, ошибка регистрации - ошибка программиста
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register tag %q: %v", tag, err))
	}
}

// IsValidEmail проверяет адрес по EmailPattern
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidateRequest возвращает все нарушения в порядке правил:
// email, время начала (наличие, затем будущее), длительность, комментарий.
// Пустой результат означает, что запрос валиден.
func (e *Engine) ValidateRequest(req *domain.BookingRequest) []apperror.Violation {
	if req == nil {
		return []apperror.Violation{
			{Field: FieldUserEmail, Message: MsgEmailRequired},
			{Field: FieldStartTime, Message: MsgStartTimeRequired},
		}
	}

	failed := e.structFailures(bookingFields{
		UserEmail:       req.UserEmail,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Comments:        req.Comments,
	})

	violations := make([]apperror.Violation, 0)

	switch failed["UserEmail"] {
	case "":
	case "required":
		violations = append(violations, apperror.Violation{Field: FieldUserEmail, Message: MsgEmailRequired})
	default:
		violations = append(violations, apperror.Violation{Field: FieldUserEmail, Message: MsgInvalidEmail})
	}

	if failed["StartTime"] != "" {
		violations = append(violations, apperror.Violation{Field: FieldStartTime, Message: MsgStartTimeRequired})
	} else if v, ok := e.checkFuture(*req.StartTime); !ok {
		violations = append(violations, v)
	}

	if failed["DurationMinutes"] != "" {
		violations = append(violations, apperror.Violation{Field: FieldDurationMinutes, Message: MsgDurationPositive})
	}

	if failed["Comments"] != "" {
		violations = append(violations, apperror.Violation{
			Field:   FieldComments,
			Message: fmt.Sprintf("comments must be at most %d characters", domain.MaxCommentsLength),
		})
	}

	return violations
}

// ValidateBooking проверяет email уже сохраненного бронирования.
// Время начала не перепроверяется: оно было в будущем на момент создания.
func (e *Engine) ValidateBooking(b *domain.Booking) []apperror.Violation {
	email := ""
	if b != nil {
		email = b.UserEmail
	}

	failed := e.structFailures(emailFields{UserEmail: email})
	switch failed["UserEmail"] {
	case "":
		return nil
	case "required":
		return []apperror.Violation{{Field: FieldUserEmail, Message: MsgEmailRequired}}
	default:
		return []apperror.Violation{{Field: FieldUserEmail, Message: MsgInvalidEmail}}
	}
}

// ValidatePageQuery проверяет и разбирает параметры листинга.
// direction принимается в любом регистре.
func (e *Engine) ValidatePageQuery(pageNo, pageSize int, direction, orderBy string) (domain.PageQuery, []apperror.Violation) {
	normalizedDirection := strings.ToUpper(strings.TrimSpace(direction))
	normalizedOrderBy := strings.TrimSpace(orderBy)

	failed := e.structFailures(pageFields{
		PageNo:    pageNo,
		PageSize:  pageSize,
		Direction: normalizedDirection,
		OrderBy:   normalizedOrderBy,
	})

	violations := make([]apperror.Violation, 0)

	if failed["PageNo"] != "" {
		violations = append(violations, apperror.Violation{
			Field:   FieldPageNo,
			Message: "must be greater than or equal to 0",
		})
	} else if pageSize > 0 && pageNo > math.MaxInt/pageSize {
		// pageNo*pageSize не должен переполнять смещение
		violations = append(violations, apperror.Violation{
			Field:   FieldPageNo,
			Message: fmt.Sprintf("must be at most %d for pageSize %d", math.MaxInt/pageSize, pageSize),
		})
	}

	if failed["PageSize"] != "" || pageSize > e.maxPageSize {
		violations = append(violations, apperror.Violation{
			Field:   FieldPageSize,
			Message: fmt.Sprintf("must be between 1 and %d", e.maxPageSize),
		})
	}

	if failed["Direction"] != "" {
		violations = append(violations, apperror.Violation{
			Field:   FieldDirection,
			Message: fmt.Sprintf("must be one of %s, %s", domain.SortAsc, domain.SortDesc),
		})
	}

	if failed["OrderBy"] != "" {
		fields := domain.SortableFields()
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = string(f)
		}
		violations = append(violations, apperror.Violation{
			Field:   FieldOrderBy,
			Message: "must be one of " + strings.Join(names, ", "),
		})
	}

	if len(violations) > 0 {
		return domain.PageQuery{}, violations
	}

	sortDirection, err := domain.ParseSortDirection(normalizedDirection)
	if err != nil {
		return domain.PageQuery{}, []apperror.Violation{{Field: FieldDirection, Message: err.Error()}}
	}

	return domain.PageQuery{
		PageNo:    pageNo,
		PageSize:  pageSize,
		Direction: sortDirection,
		OrderBy:   domain.SortField(normalizedOrderBy),
	}, nil
}

// checkFuture время начала, приведенное к UTC, должно быть строго позже текущего момента
func (e *Engine) checkFuture(startTime time.Time) (apperror.Violation, bool) {
	now := e.timeProvider.Now().UTC()
	if startTime.UTC().After(now) {
		return apperror.Violation{}, true
	}

	return apperror.Violation{
		Field: FieldStartTime,
		Message: fmt.Sprintf("Start time %s must be in the future. Current time is %s",
			startTime.Format(time.RFC3339), now.Format(time.RFC3339)),
	}, false
}

// structFailures возвращает имя поля структуры -> первый не прошедший тег
func (e *Engine) structFailures(s interface{}) map[string]string {
	failed := make(map[string]string)

	err := e.validate.Struct(s)
	if err == nil {
		return failed
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError - ошибка программиста, правила описаны статически
		panic(fmt.Sprintf("validation: unexpected validator error: %v", err))
	}

	for _, fe := range validationErrs {
		if _, seen := failed[fe.StructField()]; !seen {
			failed[fe.StructField()] = fe.Tag()
		}
	}
	return failed
}
