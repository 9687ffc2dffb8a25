package tensor

import (
	"math"
	"math/rand"

	"github.com/x448/float16"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var one T
	switch p := any(&one).(type) {
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	case *float16.Float16:
		*p = float16.Fromfloat32(1)
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint8:
		*p = 1
	case *bool:
		*p = true
	default:
		panic("unsupported type")
	}
	return Full(shape, one, b)
}

// Full creates a tensor filled with the given value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{2, 2}, 3.5, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with values [start, start+1, ..., end-1].
// Supported for numeric types only.
//
// Example:
//
//	t := tensor.Arange[int32](0, 12, backend) // Shape: [12]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var numElements int
	switch any(start).(type) {
	case float32:
		numElements = int(any(end).(float32) - any(start).(float32))
	case float64:
		numElements = int(any(end).(float64) - any(start).(float64))
	case int32:
		numElements = int(any(end).(int32) - any(start).(int32))
	case int64:
		numElements = int(any(end).(int64) - any(start).(int64))
	case uint8:
		numElements = int(any(end).(uint8) - any(start).(uint8))
	default:
		panic("Arange not supported for this type")
	}

	if numElements <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros[T, B](Shape{numElements}, b)
	data := t.Data()

	switch d := any(data).(type) {
	case []float32:
		s := any(start).(float32)
		for i := range d {
			d[i] = s + float32(i)
		}
	case []float64:
		s := any(start).(float64)
		for i := range d {
			d[i] = s + float64(i)
		}
	case []int32:
		s := any(start).(int32)
		for i := range d {
			d[i] = s + int32(i)
		}
	case []int64:
		s := any(start).(int64)
		for i := range d {
			d[i] = s + int64(i)
		}
	case []uint8:
		s := any(start).(uint8)
		for i := range d {
			d[i] = s + uint8(i)
		}
	}

	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// Only works with float types.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	t := tensor.Randn[float32](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	switch d := any(data).(type) {
	case []float32:
		for i := 0; i < len(d); i += 2 {
			z0, z1 := boxMuller()
			d[i] = float32(z0)
			if i+1 < len(d) {
				d[i+1] = float32(z1)
			}
		}
	case []float64:
		for i := 0; i < len(d); i += 2 {
			z0, z1 := boxMuller()
			d[i] = z0
			if i+1 < len(d) {
				d[i+1] = z1
			}
		}
	case []float16.Float16:
		for i := 0; i < len(d); i += 2 {
			z0, z1 := boxMuller()
			d[i] = float16.Fromfloat32(float32(z0))
			if i+1 < len(d) {
				d[i+1] = float16.Fromfloat32(float32(z1))
			}
		}
	default:
		panic("Randn only supports float types")
	}

	return t
}

func boxMuller() (float64, float64) {
	u1 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
	u2 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
	z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
	return z0, z1
}
