package ptex

import "io"
import "fmt"
import "math"
import "image"
import "reflect"
import "strings"
import "encoding/json"

import "github.com/tinne26/ptex/core"

// Descriptor field names, as found in configuration data.
const (
	FieldTexture      = "texture"
	FieldTopLeftX     = "topLeftX"
	FieldTopLeftY     = "topLeftY"
	FieldTopLeftW     = "topLeftW"
	FieldTopLeftH     = "topLeftH"
	FieldBottomRightX = "bottomRightX"
	FieldBottomRightY = "bottomRightY"
	FieldBottomRightW = "bottomRightW"
	FieldBottomRightH = "bottomRightH"
)

// Descriptor coordinates and extents must stay within
// [-MaxDescriptorValue, MaxDescriptorValue].
const MaxDescriptorValue = 1 << 24

// A corner rectangle of a nine-patch descriptor, in texture coordinates.
type Corner struct {
	X, Y int
	W, H int
}

// Returns the corner as an image rectangle.
func (self Corner) Rect() image.Rectangle {
	return rectXYWH(self.X, self.Y, self.W, self.H)
}

// A Descriptor defines how to slice a texture into a nine-patch.
// Only the top-left and bottom-right corners are specified; the
// other seven slices are derived from them:
//
//   TopLeft.X   TopLeft.X + TopLeft.W   BottomRight.X
//   |           |                       |
//   +-----------+-----------------------+-----------+ <- TopLeft.Y
//   | top-left  | top                   | top-right |
//   +-----------+-----------------------+-----------+ <- TopLeft.Y + TopLeft.H
//   | left      | center                | right     |
//   +-----------+-----------------------+-----------+ <- BottomRight.Y
//   | btm-left  | bottom                | btm-right |
//   +-----------+-----------------------+-----------+
//
// If BottomRight doesn't start after the end of TopLeft on some
// axis, the middle strip for that axis is empty. This is legal:
// the nine-patch simply can't stretch its content on that axis.
type Descriptor struct {
	Texture core.Image
	TopLeft Corner
	BottomRight Corner
}

// Returns the center slice size. Values can be zero or negative
// for degenerate descriptors.
func (self Descriptor) CenterSize() (int, int) {
	width  := self.BottomRight.X - self.TopLeft.X - self.TopLeft.W
	height := self.BottomRight.Y - self.TopLeft.Y - self.TopLeft.H
	return width, height
}

// Returns the minimum composite size, determined by the fixed corners.
func (self Descriptor) MinSize() (int, int) {
	return self.TopLeft.W + self.BottomRight.W, self.TopLeft.H + self.BottomRight.H
}

// Returns a [*ConfigError] listing all the problems found in
// the descriptor, or nil if the descriptor can be used.
func (self Descriptor) Validate() error {
	var problems []FieldError
	if isNilImage(self.Texture) {
		problems = append(problems, FieldError{ FieldTexture, "missing" })
	}
	values := []struct{ name string ; value int ; extent bool }{
		{FieldTopLeftX, self.TopLeft.X, false},
		{FieldTopLeftY, self.TopLeft.Y, false},
		{FieldTopLeftW, self.TopLeft.W, true},
		{FieldTopLeftH, self.TopLeft.H, true},
		{FieldBottomRightX, self.BottomRight.X, false},
		{FieldBottomRightY, self.BottomRight.Y, false},
		{FieldBottomRightW, self.BottomRight.W, true},
		{FieldBottomRightH, self.BottomRight.H, true},
	}
	for _, value := range values {
		problem, ok := checkValue(value.name, value.value, value.extent)
		if !ok { problems = append(problems, problem) }
	}
	if len(problems) > 0 { return &ConfigError{ Fields: problems } }
	return nil
}

// Creates a descriptor from generic configuration data, like the
// values of a decoded JSON object. The texture field must hold a
// [core.Image] and the eight corner fields must hold integers (or
// floats with integral values). All violations are collected and
// returned together as a [*ConfigError].
func ParseDescriptor(fields map[string]any) (Descriptor, error) {
	var desc Descriptor
	var problems []FieldError

	texture := fields[FieldTexture]
	switch img := texture.(type) {
	case nil:
		problems = append(problems, FieldError{ FieldTexture, "missing" })
	case core.Image:
		if isNilImage(img) {
			problems = append(problems, FieldError{ FieldTexture, "missing" })
		} else {
			desc.Texture = img
		}
	default:
		problems = append(problems, FieldError{ FieldTexture, fmt.Sprintf("expected image, got %T", texture) })
	}

	targets := []struct{ name string ; dst *int ; extent bool }{
		{FieldTopLeftX, &desc.TopLeft.X, false},
		{FieldTopLeftY, &desc.TopLeft.Y, false},
		{FieldTopLeftW, &desc.TopLeft.W, true},
		{FieldTopLeftH, &desc.TopLeft.H, true},
		{FieldBottomRightX, &desc.BottomRight.X, false},
		{FieldBottomRightY, &desc.BottomRight.Y, false},
		{FieldBottomRightW, &desc.BottomRight.W, true},
		{FieldBottomRightH, &desc.BottomRight.H, true},
	}
	for _, target := range targets {
		raw, found := fields[target.name]
		if !found || raw == nil {
			problems = append(problems, FieldError{ target.name, "missing" })
			continue
		}
		value, ok := toInt(raw)
		if !ok {
			problems = append(problems, FieldError{ target.name, fmt.Sprintf("expected int32 integer, got %T(%v)", raw, raw) })
			continue
		}
		problem, ok := checkValue(target.name, value, target.extent)
		if !ok {
			problems = append(problems, problem)
			continue
		}
		*target.dst = value
	}

	if len(problems) > 0 { return Descriptor{}, &ConfigError{ Fields: problems } }
	return desc, nil
}

// Decodes a descriptor from a JSON object with the corner fields (see
// the Field* constants). Textures can't be represented in JSON, so the
// given texture is used instead of any "texture" field present in the
// data. Errors always wrap [ErrInvalidConfiguration].
func DecodeDescriptor(reader io.Reader, texture core.Image) (Descriptor, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	fields := make(map[string]any, 9)
	err := decoder.Decode(&fields)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: decoding descriptor: %w", ErrInvalidConfiguration, err)
	}
	if texture != nil {
		fields[FieldTexture] = texture
	} else {
		delete(fields, FieldTexture)
	}
	return ParseDescriptor(fields)
}

// Reports nil images, including typed nil pointers
// like (*image.RGBA)(nil).
func isNilImage(img core.Image) bool {
	if img == nil { return true }
	value := reflect.ValueOf(img)
	return value.Kind() == reflect.Pointer && value.IsNil()
}

func checkValue(name string, value int, extent bool) (FieldError, bool) {
	if extent && value < 0 {
		return FieldError{ name, fmt.Sprintf("negative extent %d", value) }, false
	}
	if value > MaxDescriptorValue || value < -MaxDescriptorValue {
		return FieldError{ name, fmt.Sprintf("value %d out of range", value) }, false
	}
	return FieldError{}, true
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int: return n, true
	case int8: return int(n), true
	case int16: return int(n), true
	case int32: return int(n), true
	case int64: return int64ToInt(n)
	case uint8: return int(n), true
	case uint16: return int(n), true
	case uint32: return int64ToInt(int64(n))
	case uint: return int64ToInt(int64(min(n, math.MaxInt32 + 1)))
	case uint64: return int64ToInt(int64(min(n, math.MaxInt32 + 1)))
	case float32: return floatToInt(float64(n))
	case float64: return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		if err == nil { return int64ToInt(i) }
		f, err := n.Float64()
		if err != nil { return 0, false }
		return floatToInt(f)
	default:
		return 0, false
	}
}

// Values beyond the int32 range are rejected, so conversions
// are safe on any platform.
func int64ToInt(value int64) (int, bool) {
	if value > math.MaxInt32 || value < math.MinInt32 { return 0, false }
	return int(value), true
}

func floatToInt(value float64) (int, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) { return 0, false }
	if value != math.Trunc(value) { return 0, false }
	if value > math.MaxInt32 || value < math.MinInt32 { return 0, false }
	return int(value), true
}

// A problem found on a specific descriptor field.
type FieldError struct {
	Field string
	Problem string
}

func (self FieldError) Error() string { return self.Field + ": " + self.Problem }

// A ConfigError reports every problem found in a nine-patch descriptor
// at once. It matches [ErrInvalidConfiguration] with [errors.Is].
type ConfigError struct {
	Fields []FieldError
}

// Returns whether the error includes a problem for the given field.
func (self *ConfigError) Has(field string) bool {
	return hasFieldError(self.Fields, field)
}

func (self *ConfigError) Error() string {
	var builder strings.Builder
	builder.WriteString(string(ErrInvalidConfiguration))
	builder.WriteString(": ")
	for i, field := range self.Fields {
		if i > 0 { builder.WriteString(", ") }
		builder.WriteString(field.Error())
	}
	return builder.String()
}

func (self *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func hasFieldError(problems []FieldError, field string) bool {
	for _, problem := range problems {
		if problem.Field == field { return true }
	}
	return false
}
