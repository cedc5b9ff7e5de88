package forecaststore

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
)

// reply mimics the ValkeyMessage shapes ZREVRANGE WITHSCORES can return.
type reply struct {
	str    string
	double *float64
	array  []reply
	null   bool
}

func bulk(s string) reply { return reply{str: s} }

func double(v float64) reply { return reply{double: &v} }

func pair(member string, score float64) reply {
	return reply{array: []reply{bulk(member), double(score)}}
}

func (r *reply) ToArray() ([]reply, error) {
	if r.array == nil {
		return nil, errors.New("not an array")
	}
	return r.array, nil
}

func (r *reply) ToString() (string, error) {
	switch {
	case r.null:
		return "", valkey.Nil
	case r.double != nil || r.array != nil:
		return "", errors.New("not a string")
	}
	return r.str, nil
}

func (r *reply) ToFloat64() (float64, error) {
	if r.double == nil {
		return 0, errors.New("not a double")
	}
	return *r.double, nil
}

func (r *reply) AsFloat64() (float64, error) {
	if r.double != nil {
		return *r.double, nil
	}
	s, err := r.ToString()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

func TestParseScored(t *testing.T) {
	cases := []struct {
		name    string
		in      []reply
		want    []scoredMember
		wantErr bool
	}{
		{
			name: "resp3 tuples",
			in:   []reply{pair("paris", 4), pair("oslo", 2)},
			want: []scoredMember{{member: "paris", score: 4}, {member: "oslo", score: 2}},
		},
		{
			name: "resp2 flat",
			in:   []reply{bulk("paris"), bulk("4"), bulk("oslo"), bulk("2")},
			want: []scoredMember{{member: "paris", score: 4}, {member: "oslo", score: 2}},
		},
		{
			name: "resp2 drops dangling member",
			in:   []reply{bulk("paris"), bulk("4"), bulk("oslo")},
			want: []scoredMember{{member: "paris", score: 4}},
		},
		{
			name: "resp2 skips nil member",
			in:   []reply{{null: true}, bulk("1"), bulk("lima"), bulk("3")},
			want: []scoredMember{{member: "lima", score: 3}},
		},
		{
			name: "resp3 skips nil member",
			in:   []reply{{array: []reply{{null: true}, double(1)}}, pair("lima", 3)},
			want: []scoredMember{{member: "lima", score: 3}},
		},
		{
			name:    "resp2 bad score",
			in:      []reply{bulk("paris"), bulk("many")},
			wantErr: true,
		},
		{
			name:    "resp3 score not a double",
			in:      []reply{{array: []reply{bulk("paris"), bulk("4")}}},
			wantErr: true,
		},
		{
			name: "empty",
			in:   nil,
			want: []scoredMember{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseScored(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
