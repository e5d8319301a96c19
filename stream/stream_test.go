package stream

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BufferSize != 64*1024 {
		t.Errorf("DefaultConfig().BufferSize = %d, want %d", cfg.BufferSize, 64*1024)
	}
	if cfg.MaxLineLength != 1024*1024 {
		t.Errorf("DefaultConfig().MaxLineLength = %d, want %d", cfg.MaxLineLength, 1024*1024)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "zero config is valid",
			cfg:     Config{},
			wantErr: false,
		},
		{
			name:    "max line length equal to buffer",
			cfg:     Config{BufferSize: 100, MaxLineLength: 100},
			wantErr: false,
		},
		{
			name:    "only buffer size",
			cfg:     Config{BufferSize: 100},
			wantErr: false,
		},
		{
			name:    "max line length below buffer",
			cfg:     Config{BufferSize: 100, MaxLineLength: 50},
			wantErr: true,
		},
		{
			name:    "negative buffer",
			cfg:     Config{BufferSize: -1},
			wantErr: true,
		},
		{
			name:    "negative max line length",
			cfg:     Config{MaxLineLength: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrBufferTooSmall(t *testing.T) {
	err := Config{BufferSize: 100, MaxLineLength: 50}.Validate()

	var target ErrBufferTooSmall
	if !errors.As(err, &target) {
		t.Fatalf("Validate() error = %v, want ErrBufferTooSmall", err)
	}
	if target.Requested != 50 || target.Minimum != 100 {
		t.Errorf("ErrBufferTooSmall = %+v, want {50 100}", target)
	}
	if got, want := err.Error(), "stream: max line length 50 below buffer size 100"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "zero values",
			cfg:  Config{},
			want: Config{BufferSize: 64 * 1024, MaxLineLength: 1024 * 1024},
		},
		{
			name: "custom values kept",
			cfg:  Config{BufferSize: 10, MaxLineLength: 20},
			want: Config{BufferSize: 10, MaxLineLength: 20},
		},
		{
			name: "buffer clamped to max line length",
			cfg:  Config{MaxLineLength: 16},
			want: Config{BufferSize: 16, MaxLineLength: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ApplyDefaults(); got != tt.want {
				t.Errorf("ApplyDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
