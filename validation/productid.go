package validation

// ValidateExternalProductID checks the format and check digit of an external
// product identifier. UPC-A is 12 digits, EAN-13 is 13, GTIN-14 is 14, all
// with a GS1 mod-10 check digit. ISBN is accepted as ISBN-13 (GS1) or ISBN-10
// (mod-11, trailing X allowed).
func ValidateExternalProductID(idType, id string) bool {
	switch idType {
	case "upc":
		return len(id) == 12 && gs1ChecksumValid(id)
	case "ean":
		return len(id) == 13 && gs1ChecksumValid(id)
	case "gtin":
		return len(id) == 14 && gs1ChecksumValid(id)
	case "isbn":
		if len(id) == 13 {
			return gs1ChecksumValid(id)
		}
		return len(id) == 10 && isbn10ChecksumValid(id)
	default:
		return false
	}
}

// gs1ChecksumValid verifies the GS1 check digit: from the right, digits in
// odd positions (check digit excluded) weigh 3, even positions weigh 1.
func gs1ChecksumValid(id string) bool {
	sum := 0
	for i := 0; i < len(id)-1; i++ {
		d := id[i]
		if d < '0' || d > '9' {
			return false
		}
		weight := 1
		if (len(id)-1-i)%2 == 1 {
			weight = 3
		}
		sum += int(d-'0') * weight
	}
	check := id[len(id)-1]
	if check < '0' || check > '9' {
		return false
	}
	return (10-sum%10)%10 == int(check-'0')
}

func isbn10ChecksumValid(id string) bool {
	sum := 0
	for i := 0; i < 10; i++ {
		c := id[i]
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c == 'X' && i == 9:
			v = 10
		default:
			return false
		}
		sum += v * (10 - i)
	}
	return sum%11 == 0
}
