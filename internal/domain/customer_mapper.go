package domain

// ToCustomerMetaModel never fails: fields missing from the source map to "".
func ToCustomerMetaModel(customer CustomerModel) CustomerMetaModel {
	meta := CustomerMetaModel{
		CustomerID: string(customer.CustomerID),
		UserID:     customer.UserID,
		CreatedAt:  customer.CreatedAt,
	}

	if info := customer.BasicInfo; info != nil {
		meta.Name = info.Name
		meta.Mobile = info.Mobile
		meta.Email = info.Email
	}

	return meta
}

// ToCustomerMetaModelList keeps input order and length. A nil input yields an
// empty, non-nil slice so it encodes as [] rather than null.
func ToCustomerMetaModelList(customers []CustomerModel) []CustomerMetaModel {
	metas := make([]CustomerMetaModel, 0, len(customers))
	for _, customer := range customers {
		metas = append(metas, ToCustomerMetaModel(customer))
	}

	return metas
}
