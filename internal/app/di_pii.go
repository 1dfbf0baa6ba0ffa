package app

import (
	"context"
	"fmt"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

// FieldKey returns the field encryption key loaded from configuration.
func (c *Container) FieldKey() (*piiDomain.FieldKey, error) {
	var err error
	c.fieldKeyInit.Do(func() {
		c.fieldKey, err = c.initFieldKey()
		if err != nil {
			c.initErrors["fieldKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldKey"]; exists {
		return nil, storedErr
	}
	return c.fieldKey, nil
}

// FieldCipher returns the AES-GCM field cipher.
func (c *Container) FieldCipher() (piiService.FieldCipher, error) {
	var err error
	c.fieldCipherInit.Do(func() {
		c.fieldCipher, err = c.initFieldCipher()
		if err != nil {
			c.initErrors["fieldCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCipher"]; exists {
		return nil, storedErr
	}
	return c.fieldCipher, nil
}

// ApplicationRecordCodec returns the record codec for merchant application records.
func (c *Container) ApplicationRecordCodec() (piiService.RecordCodec, error) {
	var err error
	c.applicationRecordCodecInit.Do(func() {
		c.applicationRecordCodec, err = c.initRecordCodec(piiDomain.MerchantApplicationCatalog())
		if err != nil {
			c.initErrors["applicationRecordCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationRecordCodec"]; exists {
		return nil, storedErr
	}
	return c.applicationRecordCodec, nil
}

// ExtractionRecordCodec returns the record codec for document extraction records.
func (c *Container) ExtractionRecordCodec() (piiService.RecordCodec, error) {
	var err error
	c.extractionRecordCodecInit.Do(func() {
		c.extractionRecordCodec, err = c.initRecordCodec(piiDomain.DocumentExtractionCatalog())
		if err != nil {
			c.initErrors["extractionRecordCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["extractionRecordCodec"]; exists {
		return nil, storedErr
	}
	return c.extractionRecordCodec, nil
}

// initFieldKey loads the field encryption key from configuration.
// A KMS-wrapped key takes precedence over a plain hex key.
func (c *Container) initFieldKey() (*piiDomain.FieldKey, error) {
	loader := piiService.NewKeyLoader()

	if c.config.KMSKeyURI != "" {
		key, err := loader.LoadFromKMS(
			context.Background(),
			c.config.KMSKeyURI,
			c.config.FieldEncryptionKeyCiphertext,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load field key from KMS: %w", err)
		}
		return key, nil
	}

	if c.config.FieldEncryptionKey != "" {
		key, err := loader.LoadPlain(c.config.FieldEncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse field encryption key: %w", err)
		}
		return key, nil
	}

	return nil, fmt.Errorf(
		"field encryption key not configured: set FIELD_ENCRYPTION_KEY or KMS_KEY_URI with FIELD_ENCRYPTION_KEY_CIPHERTEXT: %w",
		piiDomain.ErrKeyUnavailable,
	)
}

// initFieldCipher creates the field cipher from the loaded key.
func (c *Container) initFieldCipher() (piiService.FieldCipher, error) {
	key, err := c.FieldKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get field key for field cipher: %w", err)
	}

	cipher, err := piiService.NewAESFieldCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}

	return cipher, nil
}

// initRecordCodec creates a record codec bound to the given catalog.
func (c *Container) initRecordCodec(catalog piiDomain.Catalog) (piiService.RecordCodec, error) {
	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for record codec: %w", err)
	}

	return piiService.NewRecordCodec(catalog, cipher, c.Logger()), nil
}
