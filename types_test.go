package mdpress

import (
	"errors"
	"testing"
)

func TestPageLayoutValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  *PageLayout
		wantErr error
	}{
		{
			name:   "nil layout means defaults",
			layout: nil,
		},
		{
			name:   "default layout",
			layout: DefaultPageLayout(),
		},
		{
			name:   "uppercase size and orientation",
			layout: &PageLayout{Size: "A4", Orientation: "Portrait", Margin: 1},
		},
		{
			name:   "legal landscape",
			layout: &PageLayout{Size: PageSizeLegal, Orientation: OrientationLandscape, Margin: MaxMargin},
		},
		{
			name:    "unknown size",
			layout:  &PageLayout{Size: "tabloid", Orientation: OrientationPortrait, Margin: 1},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "unknown orientation",
			layout:  &PageLayout{Size: PageSizeA4, Orientation: "sideways", Margin: 1},
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "margin below minimum",
			layout:  &PageLayout{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 0.1},
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin above maximum",
			layout:  &PageLayout{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 3.5},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.layout.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageLayoutPaperDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		layout     PageLayout
		wantWidth  float64
		wantHeight float64
	}{
		{"a4 portrait", PageLayout{Size: "a4", Orientation: "portrait"}, 8.27, 11.69},
		{"a4 landscape", PageLayout{Size: "a4", Orientation: "landscape"}, 11.69, 8.27},
		{"letter portrait", PageLayout{Size: "letter", Orientation: "portrait"}, 8.5, 11},
		{"legal portrait", PageLayout{Size: "legal", Orientation: "portrait"}, 8.5, 14},
		{"case insensitive", PageLayout{Size: "Legal", Orientation: "LANDSCAPE"}, 14, 8.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h := tt.layout.paperDimensions()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("paperDimensions() = (%v, %v), want (%v, %v)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil layout falls back to a4 portrait", func(t *testing.T) {
		t.Parallel()
		opts := buildPDFOptions(nil)
		if *opts.PaperWidth != 8.27 || *opts.PaperHeight != 11.69 {
			t.Errorf("paper = %v x %v, want 8.27 x 11.69", *opts.PaperWidth, *opts.PaperHeight)
		}
		if *opts.MarginTop != DefaultMargin {
			t.Errorf("MarginTop = %v, want %v", *opts.MarginTop, DefaultMargin)
		}
		if !opts.PrintBackground {
			t.Error("PrintBackground = false, want true")
		}
	})

	t.Run("explicit layout", func(t *testing.T) {
		t.Parallel()
		opts := buildPDFOptions(&PageLayout{Size: "letter", Orientation: "landscape", Margin: 1})
		if *opts.PaperWidth != 11 || *opts.PaperHeight != 8.5 {
			t.Errorf("paper = %v x %v, want 11 x 8.5", *opts.PaperWidth, *opts.PaperHeight)
		}
		if *opts.MarginBottom != 1 {
			t.Errorf("MarginBottom = %v, want 1", *opts.MarginBottom)
		}
	})
}
