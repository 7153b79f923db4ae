package service

import (
	"fmt"
	"strconv"

	"text-annotation-be/internal/entity"
)

// primitiveFeatureSupport converts user supplied values into the string label
// representation stored on annotations. Only primitive feature types are
// supported.
type primitiveFeatureSupport struct{}

func NewPrimitiveFeatureSupport() FeatureSupportRegistry {
	return &primitiveFeatureSupport{}
}

func (r *primitiveFeatureSupport) UnwrapFeatureValue(feature *entity.AnnotationFeature, value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", fmt.Errorf("no value given for feature [%s]", feature.Name)
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T for feature [%s]", value, feature.Name)
	}
}
