package withings

import "fmt"

// Every endpoint wraps its payload in an envelope {"status": N, "body": {}}.
// The numeric status, not the HTTP status, is what signals failure. The sets
// below are the documented Withings status codes per category; a code in
// none of them is surfaced as UnknownStatusError rather than treated as
// success.

type AuthFailedError struct{ Status int }

func (e *AuthFailedError) Error() string { return statusMessage("authentication failed", e.Status) }

type InvalidParamsError struct{ Status int }

func (e *InvalidParamsError) Error() string { return statusMessage("invalid params", e.Status) }

type UnauthorizedError struct{ Status int }

func (e *UnauthorizedError) Error() string { return statusMessage("unauthorized", e.Status) }

type ErrorOccurredError struct{ Status int }

func (e *ErrorOccurredError) Error() string { return statusMessage("an error occurred", e.Status) }

type TimeoutError struct{ Status int }

func (e *TimeoutError) Error() string { return statusMessage("timeout", e.Status) }

type BadStateError struct{ Status int }

func (e *BadStateError) Error() string { return statusMessage("bad state", e.Status) }

type TooManyRequestsError struct{ Status int }

func (e *TooManyRequestsError) Error() string { return statusMessage("too many requests", e.Status) }

type UnknownStatusError struct{ Status int }

func (e *UnknownStatusError) Error() string { return statusMessage("unknown status", e.Status) }

func statusMessage(kind string, status int) string {
	return fmt.Sprintf("withings: %s (status %d)", kind, status)
}

var (
	statusSuccess    = statusSet(0)
	statusAuthFailed = statusSet(100, 101, 102, 200, 401)

	statusInvalidParams = statusSet(
		201, 202, 203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 216,
		217, 218, 220, 221, 223, 225, 227, 228, 229, 230, 234, 235, 236, 238,
		240, 241, 242, 243, 244, 245, 246, 247, 248, 249, 250, 251, 252, 254,
		260, 261, 262, 263, 264, 265, 266, 267, 271, 272, 275, 276, 283, 284,
		285, 286, 287, 288, 290, 293, 294, 295, 297, 300, 301, 302, 303, 304,
		321, 323, 324, 325, 326, 327, 328, 329, 330, 331, 332, 333, 334, 335,
		336, 337, 338, 339, 340, 341, 342, 343, 344, 345, 346, 347, 348, 349,
		350, 351, 352, 353, 380, 381, 382, 400, 501, 502, 503, 504, 505, 506,
		509, 510, 511, 523, 532, 3017, 3018, 3019,
	)

	statusUnauthorized = statusSet(214, 277, 2553, 2554, 2555)

	statusErrorOccurred = statusSet(
		215, 219, 222, 224, 226, 231, 233, 237, 253, 255, 256, 257, 258, 259,
		268, 269, 270, 273, 274, 278, 279, 280, 281, 282, 289, 291, 292, 296,
		298, 305, 306, 308, 309, 310, 311, 314, 315, 316, 317, 318, 319, 320,
		322, 370, 371, 372, 373, 374, 375, 383, 391, 402, 516, 517, 518, 519,
		520, 521, 525, 526, 527, 528, 529, 530, 531, 533, 602, 700, 1051,
		1052, 1053, 1054, 2551, 2552, 2556, 2557, 2558, 2559, 3000, 3001,
		3002, 3003, 3004, 3005, 3006, 3007, 3008, 3009, 3010, 3011, 3012,
		3013, 3014, 3015, 3016, 3020, 3021, 3022, 3023, 3024, 5000, 5001,
		5005, 5006, 6000, 6010, 6011, 9000, 10000,
	)

	statusTimeout         = statusSet(522)
	statusBadState        = statusSet(524)
	statusTooManyRequests = statusSet(601)
)

func statusSet(codes ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func statusIn(status int, set map[int]struct{}) bool {
	_, ok := set[status]
	return ok
}

// ResponseBody validates a decoded response envelope and returns its body,
// or a typed error carrying the numeric status. A missing or non-numeric
// status is an UnexpectedTypeError, never a silent success.
func ResponseBody(data any) (map[string]any, error) {
	envelope, err := asDict(data)
	if err != nil {
		return nil, err
	}
	status, err := asInt(envelope["status"])
	if err != nil {
		return nil, err
	}

	switch {
	case statusIn(status, statusSuccess):
		// write endpoints answer status 0 with no body at all
		if envelope["body"] == nil {
			return nil, nil
		}
		return asDict(envelope["body"])
	case statusIn(status, statusAuthFailed):
		return nil, &AuthFailedError{Status: status}
	case statusIn(status, statusInvalidParams):
		return nil, &InvalidParamsError{Status: status}
	case statusIn(status, statusUnauthorized):
		return nil, &UnauthorizedError{Status: status}
	case statusIn(status, statusErrorOccurred):
		return nil, &ErrorOccurredError{Status: status}
	case statusIn(status, statusTimeout):
		return nil, &TimeoutError{Status: status}
	case statusIn(status, statusBadState):
		return nil, &BadStateError{Status: status}
	case statusIn(status, statusTooManyRequests):
		return nil, &TooManyRequestsError{Status: status}
	default:
		return nil, &UnknownStatusError{Status: status}
	}
}
