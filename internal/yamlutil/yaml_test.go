package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ayase-lab/mdpress/internal/yamlutil"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	err := yamlutil.Unmarshal([]byte("name: batch\ncount: 3\n"), &s)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "batch" || s.Count != 3 {
		t.Errorf("got %+v, want {batch 3}", s)
	}
}

func TestUnmarshal_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name:    "empty data",
			data:    nil,
			dest:    &sample{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	huge := []byte("name: " + strings.Repeat("a", yamlutil.MaxInputSize))
	var s sample
	err := yamlutil.Unmarshal(huge, &s)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name:    "known fields",
			data:    "name: ok\ncount: 1\n",
			wantErr: false,
		},
		{
			name:    "unknown field rejected",
			data:    "name: ok\nbogus: true\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s sample
			err := yamlutil.UnmarshalStrict([]byte(tt.data), &s)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
